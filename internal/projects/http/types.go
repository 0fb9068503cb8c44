package http

import (
	"time"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/events"
	"github.com/GoSim-25-26J-441/project-board/internal/projects/service"
)

const defaultKeepAlive = 15 * time.Second

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc       *service.ProjectService
	broker    *events.Broker
	keepAlive time.Duration
}

func New(svc *service.ProjectService, broker *events.Broker, keepAlive time.Duration) *Handler {
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}
	return &Handler{svc: svc, broker: broker, keepAlive: keepAlive}
}

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

type moveReq struct {
	Status string `json:"status"`
}
