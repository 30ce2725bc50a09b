package controller

import (
	"github.com/nitadee/roomreport/internal/service/report"
)

type Controller struct {
	service *report.Service
}

func NewController(service *report.Service) *Controller {
	return &Controller{service: service}
}
