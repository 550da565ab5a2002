package model

type User struct {
	Handle                  string
	Email                   *string
	VkId                    *string
	OpenId                  *string
	FirstName               *string
	LastName                *string
	Country                 *string
	City                    *string
	Organization            *string
	Contribution            int
	Rank                    *string
	Rating                  *int
	MaxRank                 *string
	MaxRating               *int
	LastOnlineTimeSeconds   int64
	RegistrationTimeSeconds int64
	FriendOfCount           int
	Avatar                  string
	TitlePhoto              string
}

func UserFromMap(raw map[string]any) (*User, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("User", raw)
	u := &User{
		Handle:                  req(f, "handle", kString),
		Email:                   opt(f, "email", kString),
		VkId:                    opt(f, "vkId", kString),
		OpenId:                  opt(f, "openId", kString),
		FirstName:               opt(f, "firstName", kString),
		LastName:                opt(f, "lastName", kString),
		Country:                 opt(f, "country", kString),
		City:                    opt(f, "city", kString),
		Organization:            opt(f, "organization", kString),
		Contribution:            req(f, "contribution", kInt),
		Rank:                    opt(f, "rank", kString),
		Rating:                  opt(f, "rating", kInt),
		MaxRank:                 opt(f, "maxRank", kString),
		MaxRating:               opt(f, "maxRating", kInt),
		LastOnlineTimeSeconds:   req(f, "lastOnlineTimeSeconds", kInt64),
		RegistrationTimeSeconds: req(f, "registrationTimeSeconds", kInt64),
		FriendOfCount:           req(f, "friendOfCount", kInt),
		Avatar:                  req(f, "avatar", kString),
		TitlePhoto:              req(f, "titlePhoto", kString),
	}
	if f.err != nil {
		return nil, f.err
	}
	return u, nil
}

func (u User) ToMap() map[string]any {
	m := map[string]any{
		"handle":                    u.Handle,
		"contribution":              u.Contribution,
		"last_online_time_seconds":  u.LastOnlineTimeSeconds,
		"registration_time_seconds": u.RegistrationTimeSeconds,
		"friend_of_count":           u.FriendOfCount,
		"avatar":                    u.Avatar,
		"title_photo":               u.TitlePhoto,
	}
	setOpt(m, "email", u.Email)
	setOpt(m, "vk_id", u.VkId)
	setOpt(m, "open_id", u.OpenId)
	setOpt(m, "first_name", u.FirstName)
	setOpt(m, "last_name", u.LastName)
	setOpt(m, "country", u.Country)
	setOpt(m, "city", u.City)
	setOpt(m, "organization", u.Organization)
	setOpt(m, "rank", u.Rank)
	setOpt(m, "rating", u.Rating)
	setOpt(m, "max_rank", u.MaxRank)
	setOpt(m, "max_rating", u.MaxRating)
	return m
}
