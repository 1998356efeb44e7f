package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/webshop-io/shop-api/internal/core/domain"
	"github.com/webshop-io/shop-api/internal/core/ports"
)

type stubOrderService struct {
	changeStatus func(int64, domain.OrderStatus) (*domain.Order, error)
}

func (s *stubOrderService) GetOrder(_ context.Context, id int64) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (s *stubOrderService) ListOrders(_ context.Context, _ ports.OrderListInput) (*ports.OrderListResult, error) {
	return &ports.OrderListResult{Items: []*domain.Order{}, Page: 1, Limit: 20}, nil
}

func (s *stubOrderService) ChangeStatus(_ context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	return s.changeStatus(id, status)
}

type stubDispatcher struct {
	events []ports.OrderEventInput
}

func (d *stubDispatcher) Enqueue(event ports.OrderEventInput) {
	d.events = append(d.events, event)
}

func (d *stubDispatcher) EnqueueBatch(events []ports.OrderEventInput) {
	d.events = append(d.events, events...)
}

func newOrderRequest(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOrderChangeStatus_Success(t *testing.T) {
	svc := &stubOrderService{
		changeStatus: func(id int64, status domain.OrderStatus) (*domain.Order, error) {
			if id != 12 || status != domain.OrderAccepted {
				t.Fatalf("unexpected call: id=%d status=%s", id, status)
			}
			return &domain.Order{ID: 12, CartID: 3, Status: status}, nil
		},
	}
	h := NewOrderHandler(svc, &stubDispatcher{})

	c, rec := newOrderRequest(t, http.MethodPatch, "/api/order/12", `{"status":"accepted"}`)
	c.SetParamNames("id")
	c.SetParamValues("12")

	if err := h.ChangeStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var order domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if order.Status != domain.OrderAccepted {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderChangeStatus_RejectsUnknownStatus(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{}, &stubDispatcher{})

	c, _ := newOrderRequest(t, http.MethodPatch, "/api/order/12", `{"status":"panding"}`)
	c.SetParamNames("id")
	c.SetParamValues("12")

	err := h.ChangeStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", he.Code)
	}
}

func TestReceiveEvents_EnqueuesBatch(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewOrderHandler(&stubOrderService{}, dispatcher)

	body := `[
		{"order_id":1,"status":"accepted","timestamp":"2026-03-01T12:00:00Z","source":"warehouse"},
		{"order_id":2,"status":"shipped","timestamp":"2026-03-01T12:05:00Z","source":"carrier"}
	]`
	c, rec := newOrderRequest(t, http.MethodPost, "/api/order/events", body)

	if err := h.ReceiveEvents(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.events) != 2 {
		t.Fatalf("expected 2 enqueued events, got %d", len(dispatcher.events))
	}
	if dispatcher.events[0].OrderID != 1 || dispatcher.events[1].Source != "carrier" {
		t.Fatalf("events not mapped: %+v", dispatcher.events)
	}
}

func TestReceiveEvents_EmptyBatch(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{}, &stubDispatcher{})

	c, _ := newOrderRequest(t, http.MethodPost, "/api/order/events", `[]`)
	err := h.ReceiveEvents(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestReceiveEvents_InvalidEvent(t *testing.T) {
	dispatcher := &stubDispatcher{}
	h := NewOrderHandler(&stubOrderService{}, dispatcher)

	body := `[{"order_id":1,"status":"teleported","timestamp":"2026-03-01T12:00:00Z","source":"warehouse"}]`
	c, _ := newOrderRequest(t, http.MethodPost, "/api/order/events", body)

	err := h.ReceiveEvents(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", he.Code)
	}
	if len(dispatcher.events) != 0 {
		t.Fatalf("invalid batch must not be enqueued")
	}
}
