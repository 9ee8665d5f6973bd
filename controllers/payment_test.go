// controllers/payment_test.go
package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func postPayment(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	url := fmt.Sprintf("/payments?salon_id=%s", uuid.New())
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	CreatePayment(c)
	return w
}

func TestCreatePayment_RejectsNegativeAmounts(t *testing.T) {
	apptID := uuid.New()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "negative tips",
			body: fmt.Sprintf(`{"appointment_id":%q,"payment_method":"Cash","tips":-10}`, apptID),
		},
		{
			name: "negative additional charges",
			body: fmt.Sprintf(`{"appointment_id":%q,"payment_method":"Cash","additional_charges":-5}`, apptID),
		},
		{
			name: "negative additional discount",
			body: fmt.Sprintf(`{"appointment_id":%q,"payment_method":"Cash","additional_discount":-20}`, apptID),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postPayment(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid input")
		})
	}
}

func TestCreatePayment_RequiresPaymentMethod(t *testing.T) {
	w := postPayment(t, fmt.Sprintf(`{"appointment_id":%q}`, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
