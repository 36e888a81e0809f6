package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const (
	testReadDelay  = 30 * time.Millisecond
	testWriteDelay = 80 * time.Millisecond
)

type latencyTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *latencyTestSuite) SetupTest() {
	e := echo.New()
	e.Use(SimulateLatency(testReadDelay, testWriteDelay))
	e.Any("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.e = e
}

func (s *latencyTestSuite) elapsed(method string, ctx context.Context) (time.Duration, int) {
	req := httptest.NewRequest(method, "/ping", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	startedAt := time.Now()
	s.e.ServeHTTP(rec, req)
	return time.Since(startedAt), rec.Code
}

func (s *latencyTestSuite) TestReadDelay() {
	s.T().Log("read call settles after the read delay")
	{
		elapsed, code := s.elapsed(http.MethodGet, context.Background())
		s.Assert().Equal(http.StatusOK, code)
		s.Assert().GreaterOrEqual(elapsed, testReadDelay, "read call must not settle early")
		s.Assert().Less(elapsed, testWriteDelay, "read call must not wait for write delay")
	}
}

func (s *latencyTestSuite) TestWriteDelay() {
	s.T().Log("write calls settle after the write delay")
	{
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			elapsed, code := s.elapsed(method, context.Background())
			s.Assert().Equal(http.StatusOK, code)
			s.Assert().GreaterOrEqual(elapsed, testWriteDelay, "write call must not settle early")
		}
	}
}

func (s *latencyTestSuite) TestCanceledRequest() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.T().Log("canceled request must not wait out the delay")
	{
		elapsed, _ := s.elapsed(http.MethodGet, ctx)
		s.Assert().Less(elapsed, testReadDelay, "canceled call must return immediately")
	}
}

// start latency middleware test suite
func TestLatencyTestSuite(t *testing.T) {
	suite.Run(t, new(latencyTestSuite))
}
