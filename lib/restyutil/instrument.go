package restyutil

import (
	"fmt"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type InstrumentOutput interface {
	Write(id string, contents string)
}

// InstrumentClient writes every completed request/response exchange of client to output.
// `output` can be nil, if it is, then the function is a no-op
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		id := atomic.AddUint64(&idcounter, 1)
		output.Write(
			fmt.Sprintf("%04d-%s", id, res.Request.Method),
			formatHttpMessage(res),
		)
		return nil
	})
}
