package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expense-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestRequestIDTestSuite runs the test suite
func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) run(incoming string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return seen, rec
}

// TestRequestID_GeneratesTraceID tests that middleware generates a trace ID
func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	traceID, rec := s.run("")

	_, err := uuid.Parse(traceID)
	s.NoError(err)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

// TestRequestID_UsesExistingTraceID tests that a well formed incoming ID is kept
func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	traceID, rec := s.run("existing-trace-id_12345.v2")

	s.Equal("existing-trace-id_12345.v2", traceID)
	s.Equal("existing-trace-id_12345.v2", rec.Header().Get(TraceIDHeader))
}

// TestRequestID_ReplacesUnsafeTraceID tests that malformed incoming IDs are not echoed back
func (s *RequestIDTestSuite) TestRequestID_ReplacesUnsafeTraceID() {
	testCases := []struct {
		name     string
		incoming string
	}{
		{"header injection", "abc\r\nSet-Cookie: x=1"},
		{"spaces", "trace id"},
		{"markup", "<script>"},
		{"too long", strings.Repeat("a", 65)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			traceID, rec := s.run(tc.incoming)

			s.NotEqual(tc.incoming, traceID)
			_, err := uuid.Parse(traceID)
			s.NoError(err)
			s.Equal(traceID, rec.Header().Get(TraceIDHeader))
		})
	}
}

// TestRequestID_UniquePerRequest tests that generated IDs differ between requests
func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	first, _ := s.run("")
	second, _ := s.run("")

	s.NotEqual(first, second)
}

// TestGetTraceID_Unset tests the fallback when no middleware ran
func (s *RequestIDTestSuite) TestGetTraceID_Unset() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.Equal("unknown", GetTraceID(c))
}

// TestRequestID_PropagatesToRequestContext tests that services see the same trace ID
func (s *RequestIDTestSuite) TestRequestID_PropagatesToRequestContext() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "budget-trace-1")
	c := s.echo.NewContext(req, httptest.NewRecorder())

	var fromContext string
	handler := RequestID()(func(c echo.Context) error {
		fromContext = services.TraceIDFromContext(c.Request().Context())
		return nil
	})

	s.Require().NoError(handler(c))
	s.Equal("budget-trace-1", fromContext)
}
