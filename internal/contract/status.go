package contract

import "github.com/alexanderramin/zeitrechner/internal/app"

type StatusRequest = app.StatusRequest

func NewStatusRequest() StatusRequest {
	return app.NewStatusRequest()
}

type StatusResponse = app.StatusResponse

type SessionView = app.SessionView

type Timeline = app.Timeline
