package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, " s1 ", true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "s1", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.True(t, cookies[0].Secure)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	id, ok := Read(req)
	require.True(t, ok)
	require.Equal(t, "s1", id)
}

func TestReadMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := Read(req)
	require.False(t, ok)

	req.AddCookie(&http.Cookie{Name: Name, Value: "  "})
	_, ok = Read(req)
	require.False(t, ok)
}

func TestClear(t *testing.T) {
	rec := httptest.NewRecorder()
	Clear(rec, false)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, -1, cookies[0].MaxAge)
}
