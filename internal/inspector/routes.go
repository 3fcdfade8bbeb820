package inspector

import (
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danmuck/uartframe/internal/observability"
	"github.com/danmuck/uartframe/pkg/frame"
)

const version = "0.1.0"

type encodeRequest struct {
	Payload string `json:"payload"`
}

type encodeResponse struct {
	Frame  string `json:"frame"`
	Length int    `json:"length"`
}

type scanRequest struct {
	Buffer string `json:"buffer"`
	Offset int    `json:"offset"`
}

type scanResponse struct {
	Payload     string `json:"payload"`
	HeaderIndex int    `json:"header_index"`
	EndIndex    int    `json:"end_index"`
}

type codecErrorResponse struct {
	Error      string `json:"error"`
	Reason     string `json:"reason"`
	Truncation bool   `json:"truncation"`
}

func (s *Service) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.started).String(),
			"component": "inspector",
			"version":   version,
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"uptime":    time.Since(s.started).String(),
			"component": "inspector",
			"version":   version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.POST("/encode", s.handleEncode)
	v1.POST("/scan", s.handleScan)
	v1.POST("/scan/all", s.handleScanAll)
}

func (s *Service) handleEncode(c *gin.Context) {
	var req encodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	payload, err := decodeHexField(req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload is not valid hex"})
		return
	}

	encoded, err := frame.Encode(payload)
	observability.RecordEncode(err)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, codecErrorResponse{
			Error:  err.Error(),
			Reason: frame.Reason(err),
		})
		return
	}
	c.JSON(http.StatusOK, encodeResponse{
		Frame:  hex.EncodeToString(encoded),
		Length: len(encoded),
	})
}

func (s *Service) handleScan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	buf, err := decodeHexField(req.Buffer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "buffer is not valid hex"})
		return
	}

	res, err := frame.Scan(buf, req.Offset)
	observability.RecordScan(err, len(res.Payload))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, codecErrorResponse{
			Error:      err.Error(),
			Reason:     frame.Reason(err),
			Truncation: frame.IsTruncation(err),
		})
		return
	}
	c.JSON(http.StatusOK, scanResponse{
		Payload:     hex.EncodeToString(res.Payload),
		HeaderIndex: res.HeaderIndex,
		EndIndex:    res.EndIndex,
	})
}

func (s *Service) handleScanAll(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	buf, err := decodeHexField(req.Buffer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "buffer is not valid hex"})
		return
	}

	results := frame.ScanAll(buf)
	frames := make([]scanResponse, 0, len(results))
	for _, res := range results {
		frames = append(frames, scanResponse{
			Payload:     hex.EncodeToString(res.Payload),
			HeaderIndex: res.HeaderIndex,
			EndIndex:    res.EndIndex,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"frames": frames,
		"count":  len(frames),
	})
}

// decodeHexField accepts hex with optional whitespace separators so dumps
// can be pasted as-is.
func decodeHexField(raw string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, raw)
	return hex.DecodeString(cleaned)
}
