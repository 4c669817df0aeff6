package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:5000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Recipe Search API Smoke Test\n")

	// 1. Health
	color.Yellow("\n1. Health Check")
	resp, body, err := sendRequest("GET", "/health", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	// 2. Mint a session
	color.Yellow("\n2. Create Session")
	resp, body, err = sendRequest("POST", "/session/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var sessionResp struct {
		Data struct {
			SessionID string `json:"sessionId"`
		} `json:"data"`
	}
	json.Unmarshal(body, &sessionResp)
	sessionID := sessionResp.Data.SessionID
	fmt.Println("sessionId:", sessionID)

	// 3. First turn (plain variant)
	color.Yellow("\n3. Plain Search - First Turn")
	searchReq := map[string]interface{}{
		"sessionId": sessionID,
		"query":     "something easy and spicy for dinner",
	}
	resp, body, err = sendRequest("POST", "/recipe/v1/search", searchReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var searchResp map[string]interface{}
	json.Unmarshal(body, &searchResp)
	prettyPrint(searchResp)

	// 4. Refinement turn (graph variant), echoing the raw categories
	color.Yellow("\n4. Graph Search - Refinement Turn")
	var turn struct {
		Data struct {
			MatchedCategories json.RawMessage `json:"matchedCategories"`
		} `json:"data"`
	}
	json.Unmarshal(body, &turn)
	refineReq := map[string]interface{}{
		"sessionId":       sessionID,
		"query":           "now without peanuts",
		"matchedKeywords": turn.Data.MatchedCategories,
		"top_k":           3,
	}
	resp, body, err = sendRequest("POST", "/recipe/v1/graph-search", refineReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	json.Unmarshal(body, &searchResp)
	prettyPrint(searchResp)

	// 5. Session projection
	color.Yellow("\n5. Session Projection")
	resp, body, err = sendRequest("GET", "/session/v1/"+sessionID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var projResp map[string]interface{}
	json.Unmarshal(body, &projResp)
	prettyPrint(projResp)

	// 6. Toggle a keyword
	color.Yellow("\n6. Toggle Keyword")
	toggleReq := map[string]interface{}{
		"tags": []map[string]string{
			{"name": "easy", "field": "difficulty", "state": "include"},
		},
		"name":     "easy",
		"polarity": "include",
	}
	resp, body, err = sendRequest("POST", "/keyword/v1/toggle", toggleReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var toggleResp map[string]interface{}
	json.Unmarshal(body, &toggleResp)
	prettyPrint(toggleResp)

	color.Cyan("\n✅ Smoke test complete")
}
