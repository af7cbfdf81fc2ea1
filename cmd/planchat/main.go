package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/pflag"
)

// planchat is a terminal client for the assistant: plain input goes to
// the streaming chat endpoint, slash commands hit the plan API.
func main() {
	addr := pflag.String("addr", "http://localhost:8080", "assistant base URL")
	pflag.Parse()

	client := &client{
		baseURL: strings.TrimRight(*addr, "/"),
		http:    &http.Client{Timeout: 5 * time.Minute},
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".planchat_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("planchat: /today /history /rollover /quit, anything else chats")
	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch {
		case input == "/quit" || input == "/exit":
			return
		case input == "/today":
			client.showToday()
		case input == "/rollover":
			client.rollover()
		case strings.HasPrefix(input, "/history"):
			client.showHistory()
		case strings.HasPrefix(input, "/"):
			fmt.Println("unknown command:", input)
		default:
			client.chat(input)
		}
	}
}

type client struct {
	baseURL string
	http    *http.Client
}

// envelope is the service's standard response wrapper.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func (c *client) getJSON(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", resp.Status, env.Message)
	}
	return json.Unmarshal(env.Data, out)
}

func (c *client) postJSON(path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", resp.Status, env.Message)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *client) showToday() {
	var today struct {
		Date   string `json:"date"`
		Path   string `json:"path"`
		Exists bool   `json:"exists"`
	}
	if err := c.getJSON("/api/v1/plan/today", &today); err != nil {
		fmt.Fprintln(os.Stderr, "today:", err)
		return
	}
	status := "missing"
	if today.Exists {
		status = "exists"
	}
	fmt.Printf("%s  %s (%s)\n", today.Date, today.Path, status)
}

func (c *client) rollover() {
	var result struct {
		Moved       int    `json:"moved"`
		NewFilePath string `json:"new_file_path"`
	}
	if err := c.postJSON("/api/v1/plan/rollover", struct{}{}, &result); err != nil {
		fmt.Fprintln(os.Stderr, "rollover:", err)
		return
	}
	fmt.Printf("moved %d task(s) to %s\n", result.Moved, result.NewFilePath)
}

func (c *client) showHistory() {
	var page struct {
		History []struct {
			Timestamp string `json:"timestamp"`
			Role      string `json:"role"`
			Content   string `json:"content"`
		} `json:"history"`
		Total int `json:"total"`
	}
	query := url.Values{"limit": {"10"}}
	if err := c.getJSON("/api/v1/chat/history?"+query.Encode(), &page); err != nil {
		fmt.Fprintln(os.Stderr, "history:", err)
		return
	}
	for _, m := range page.History {
		fmt.Printf("[%s] %s: %s\n", m.Timestamp, m.Role, m.Content)
	}
	fmt.Printf("(%d total)\n", page.Total)
}

// chat streams the reply, printing deltas as they arrive; when the
// stream cannot be opened it falls back to the synchronous endpoint.
func (c *client) chat(message string) {
	payload, _ := json.Marshal(map[string]string{"message": message})
	resp, err := c.http.Post(c.baseURL+"/api/v1/chat/stream", "application/json", bytes.NewReader(payload))
	if err != nil {
		c.chatSync(message)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		io.Copy(io.Discard, resp.Body)
		c.chatSync(message)
		return
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		data := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "data:"))
		if data == "" {
			continue
		}
		if data == "[DONE]" {
			break
		}
		var event struct {
			Delta string `json:"delta"`
			Error string `json:"error"`
		}
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			continue
		}
		if event.Error != "" {
			fmt.Fprintln(os.Stderr, "\nstream error:", event.Error)
			return
		}
		fmt.Print(event.Delta)
	}
	fmt.Println()
}

func (c *client) chatSync(message string) {
	var reply struct {
		Reply string `json:"reply"`
	}
	if err := c.postJSON("/api/v1/chat", map[string]string{"message": message}, &reply); err != nil {
		fmt.Fprintln(os.Stderr, "chat:", err)
		return
	}
	fmt.Println(reply.Reply)
}
