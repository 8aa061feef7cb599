// Command smoke drives a seeded dev server through the leave approval chain
// end to end: student login, submit, joint warden recommend, warden approve,
// then verifies the student received the decision notification. Intended for
// manual use against a locally running instance with SEED_MOCK_DATA=true.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type client struct {
	base  string
	token string
	http  *http.Client
}

func (c *client) do(method, path string, body interface{}, out interface{}) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.base+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	if env.Error != nil {
		return fmt.Errorf("%s %s: %s (%s)", method, path, env.Error.Message, env.Error.Code)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func login(base string, email, password string) (*client, error) {
	c := &client{base: base, http: &http.Client{Timeout: 10 * time.Second}}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	err := c.do(http.MethodPost, "/auth/login", map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.AccessToken
	return c, nil
}

func main() {
	base := flag.String("base", "http://localhost:8080/api/v1", "API base URL")
	flag.Parse()

	student, err := login(*base, "rahul.sharma@hostelhub.dev", "student123")
	if err != nil {
		log.Fatalf("student login: %v", err)
	}
	jointWarden, err := login(*base, "jointwarden@hostelhub.dev", "jwarden123")
	if err != nil {
		log.Fatalf("joint warden login: %v", err)
	}
	warden, err := login(*base, "warden@hostelhub.dev", "warden123")
	if err != nil {
		log.Fatalf("warden login: %v", err)
	}

	start := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 9).Format("2006-01-02")
	var leave struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	err = student.do(http.MethodPost, "/leaves", map[string]interface{}{
		"startDate": start,
		"endDate":   end,
		"reason":    "smoke check trip",
		"type":      "personal",
	}, &leave)
	if err != nil {
		log.Fatalf("submit: %v", err)
	}
	log.Printf("submitted leave %s (%s)", leave.ID, leave.Status)

	err = jointWarden.do(http.MethodPost, "/leaves/"+leave.ID+"/recommend", map[string]string{"remarks": "smoke check ok"}, &leave)
	if err != nil {
		log.Fatalf("recommend: %v", err)
	}
	log.Printf("recommended leave %s (%s)", leave.ID, leave.Status)

	err = warden.do(http.MethodPost, "/leaves/"+leave.ID+"/approve", map[string]string{"remarks": "smoke check approved"}, &leave)
	if err != nil {
		log.Fatalf("approve: %v", err)
	}
	if leave.Status != "approved" {
		log.Fatalf("unexpected status after approve: %s", leave.Status)
	}
	log.Printf("approved leave %s", leave.ID)

	// Second approve must fail with a conflict.
	err = warden.do(http.MethodPost, "/leaves/"+leave.ID+"/approve", map[string]string{"remarks": "again"}, nil)
	if err == nil {
		log.Fatalf("second approve unexpectedly succeeded")
	}
	log.Printf("second approve rejected as expected: %v", err)

	var feed []struct {
		Title           string `json:"title"`
		TargetStudentID string `json:"targetStudentId"`
	}
	if err := student.do(http.MethodGet, "/notifications?unread=true", nil, &feed); err != nil {
		log.Fatalf("notifications: %v", err)
	}
	for _, n := range feed {
		if n.Title == "Leave Approved" {
			log.Printf("student received decision notification")
			fmt.Println("smoke check passed")
			return
		}
	}
	log.Fatalf("no decision notification in student feed (%d entries)", len(feed))
}
