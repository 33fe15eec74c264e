// Command smoke drives a full order lifecycle against running user and
// order services. Start both services first, then run this to verify the
// happy path and the rejection paths end to end.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

var (
	userServiceURL  = envOr("USER_SERVICE_URL", "http://localhost:3001")
	orderServiceURL = envOr("ORDER_SERVICE_URL", "http://localhost:3002")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func call(method, url string, body any) (int, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			log.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	json.NewDecoder(resp.Body).Decode(&env)
	fmt.Printf("%s %s -> %s\n", method, url, resp.Status)
	return resp.StatusCode, env
}

func expect(got, want int, step string) {
	if got != want {
		log.Fatalf("%s: got status %d, want %d", step, got, want)
	}
}

func main() {
	code, user := call(http.MethodPost, userServiceURL+"/api/users", map[string]string{
		"name":  "Smoke Tester",
		"email": fmt.Sprintf("smoke-%d@example.com", os.Getpid()),
	})
	expect(code, http.StatusCreated, "create user")

	var u struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(user.Data, &u); err != nil {
		log.Fatal(err)
	}

	items := []map[string]any{
		{"productId": "p1", "name": "Widget", "quantity": 2, "price": 25.50},
		{"productId": "p2", "name": "Gadget", "quantity": 1, "price": 15.99},
	}

	code, order := call(http.MethodPost, orderServiceURL+"/api/orders", map[string]any{
		"userId": u.ID,
		"items":  items,
	})
	expect(code, http.StatusCreated, "create order")

	var o struct {
		ID    string  `json:"id"`
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal(order.Data, &o); err != nil {
		log.Fatal(err)
	}
	if o.Total != 66.99 {
		log.Fatalf("create order: got total %v, want 66.99", o.Total)
	}

	code, _ = call(http.MethodPost, orderServiceURL+"/api/orders", map[string]any{
		"userId": "no-such-user",
		"items":  items,
	})
	expect(code, http.StatusBadRequest, "create order with unknown user")

	code, _ = call(http.MethodPut, orderServiceURL+"/api/orders/"+o.ID, map[string]string{"status": "processing"})
	expect(code, http.StatusOK, "move to processing")

	code, _ = call(http.MethodPut, orderServiceURL+"/api/orders/"+o.ID, map[string]string{"status": "pending"})
	expect(code, http.StatusConflict, "forbidden transition")

	code, _ = call(http.MethodDelete, orderServiceURL+"/api/orders/"+o.ID, nil)
	expect(code, http.StatusOK, "cancel order")

	code, _ = call(http.MethodDelete, userServiceURL+"/api/users/"+u.ID, nil)
	expect(code, http.StatusNoContent, "delete user")

	fmt.Println("smoke test passed")
}
