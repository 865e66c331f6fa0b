package controller

import (
	"net/http"
	"testing"

	"gitcraft-go-server/internal/counter"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCounterRouter(store *counter.Store) *gin.Engine {
	cc := NewCounterController(store)
	r := gin.New()
	r.GET("/ping", cc.Ping)
	r.GET("/count", cc.Count)
	r.GET("/settings", cc.GetSettings)
	r.POST("/settings", cc.UpdateSettings)
	return r
}

func TestCounterController(t *testing.T) {
	r := newCounterRouter(counter.NewStore(5, 2))

	w := serve(r, http.MethodGet, "/ping", "", "", "")
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = serve(r, http.MethodGet, "/count", "", "", "")
	assert.JSONEq(t, `{"count":5,"next":7}`, w.Body.String())
	w = serve(r, http.MethodGet, "/count", "", "", "")
	assert.JSONEq(t, `{"count":7,"next":9}`, w.Body.String())

	w = serve(r, http.MethodGet, "/settings", "", "", "")
	assert.JSONEq(t, `{"value":9,"step":2}`, w.Body.String())
}

func TestCounterController_UpdateSettings(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "Both fields", body: `{"value":10,"step":5}`, wantStatus: http.StatusOK, wantBody: `{"value":10,"step":5}`},
		{name: "Value only", body: `{"value":3}`, wantStatus: http.StatusOK, wantBody: `{"value":3,"step":1}`},
		{name: "Zero step ignored", body: `{"step":0}`, wantStatus: http.StatusOK, wantBody: `{"value":0,"step":1}`},
		{name: "Empty body", body: "", wantStatus: http.StatusOK, wantBody: `{"value":0,"step":1}`},
		{name: "Malformed", body: `{"step":"x"}`, wantStatus: http.StatusBadRequest, wantBody: `{"ok":false,"error":"INVALID_BODY"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newCounterRouter(counter.NewStore(0, 1))

			w := serve(r, http.MethodPost, "/settings", "", "", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				assert.JSONEq(t, tc.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"error":"INVALID_BODY"`)
			}
		})
	}
}
