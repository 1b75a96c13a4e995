package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"strings"
	"time"

	"github.com/bilalbayram/postcheck/internal/quality"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type ValidateRequest struct {
	Content  string `json:"content"`
	Platform string `json:"platform"`
	Language string `json:"language"`
}

type DetectRequest struct {
	Content string `json:"content"`
}

type ValidateResponse struct {
	Result           quality.ValidationResult `json:"result"`
	ShouldRegenerate bool                     `json:"should_regenerate"`
	Recommendations  []string                 `json:"recommendations"`
}

type RecommendResponse struct {
	Platform        string   `json:"platform"`
	Recommendations []string `json:"recommendations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server exposes the quality engine to the upstream generation service.
type Server struct {
	app    *fiber.App
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "postcheck",
		DisableStartupMessage: true,
	})
	s := &Server{app: app, logger: logger}

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(s.logRequests)

	app.Get("/healthz", s.health)
	v1 := app.Group("/v1")
	v1.Post("/validate", s.validate)
	v1.Post("/detect", s.detect)
	v1.Post("/recommend", s.recommend)
	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Serve listens on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()
	s.logger.WithFields(logrus.Fields{
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     c.Response().StatusCode(),
		"duration":   time.Since(started).String(),
	}).Debug("handled request")
	return err
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) validate(c *fiber.Ctx) error {
	var req ValidateRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	result := quality.ValidateContent(req.Content, req.Platform, req.Language)
	s.logger.WithFields(logrus.Fields{
		"request_id":    c.GetRespHeader(fiber.HeaderXRequestID),
		"platform":      result.Platform,
		"language":      result.Language,
		"quality_score": result.QualityScore,
	}).Debug("validated content")

	return c.JSON(ValidateResponse{
		Result:           result,
		ShouldRegenerate: quality.ShouldRegenerate(result),
		Recommendations:  quality.ImprovementRecommendations(result, req.Platform),
	})
}

func (s *Server) detect(c *fiber.Ctx) error {
	var req DetectRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(quality.DetectLanguage(req.Content))
}

func (s *Server) recommend(c *fiber.Ctx) error {
	var req ValidateRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	result := quality.ValidateContent(req.Content, req.Platform, req.Language)
	return c.JSON(RecommendResponse{
		Platform:        result.Platform,
		Recommendations: quality.ImprovementRecommendations(result, req.Platform),
	})
}

func decodeBody(c *fiber.Ctx, target any) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return errors.New("request body is required")
	}
	decoder := json.NewDecoder(strings.NewReader(string(body)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: err.Error()})
}
