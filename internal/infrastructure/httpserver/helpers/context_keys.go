package helpers

import (
	"github.com/labstack/echo/v4"
)

type ctxKey string

const (
	keyUserID ctxKey = "user_id"
)

func SetUserID(c echo.Context, id string) { c.Set(string(keyUserID), id) }
func GetUserIDRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyUserID))
	id, ok := v.(string)
	return id, ok && id != ""
}
