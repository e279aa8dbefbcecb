package handler

import "github.com/labstack/echo/v4"

// envelope is the response shape shared by every endpoint:
// {error, msg, data?, token?}. Errors are rendered with the same shape by the
// central HTTP error handler.
type envelope struct {
	Error bool   `json:"error"`
	Msg   string `json:"msg"`
	Data  any    `json:"data,omitempty"`
	Token string `json:"token,omitempty"`
}

func respond(c echo.Context, status int, msg string, data any) error {
	return c.JSON(status, envelope{Error: false, Msg: msg, Data: data})
}
