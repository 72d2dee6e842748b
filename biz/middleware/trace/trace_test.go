package trace

import (
	"context"
	"net/http"
	"testing"

	"bankdemo/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	h := server.Default()
	h.Use(New())
	h.GET("/t", func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, trace_info.GetLogId(ctx))
	})

	w := ut.PerformRequest(h.Engine, http.MethodGet, "/t", nil, ut.Header{Key: headerKeyLogId, Value: "abc-123"})
	assert.Equal(t, "abc-123", string(w.Result().Body()))
	assert.Equal(t, "abc-123", string(w.Result().Header.Peek(headerKeyLogId)))

	w = ut.PerformRequest(h.Engine, http.MethodGet, "/t", nil, ut.Header{Key: headerKeyLogId, Value: "forged id!"})
	got := string(w.Result().Body())
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, "forged")
}
