package service

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/Cirillio/DonationApp/internal/domain"
)

type Renderer interface {
	RenderHome(http.ResponseWriter)
}

type Render struct {
	homeTemplate *template.Template
	logger       *slog.Logger
}

func NewRender(templatePath string, logger *slog.Logger) *Render {
	return &Render{
		homeTemplate: template.Must(template.ParseFiles(fmt.Sprintf("%s/%s", templatePath, "home.html"))),
		logger:       logger,
	}
}

type homeData struct {
	Steps   []domain.DonateStep
	Methods []domain.PaymentMethod
	Amounts []float64
}

func (r *Render) RenderHome(w http.ResponseWriter) {
	data := homeData{
		Steps:   domain.DonateSteps,
		Methods: domain.PaymentMethods,
		Amounts: domain.PaymentAmounts,
	}
	if err := r.homeTemplate.Execute(w, data); err != nil {
		r.logger.Error("can not execute home page", slog.String("error", err.Error()))
	}
}
