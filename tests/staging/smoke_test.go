//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"testing"
)

type searchResponse struct {
	Total int `json:"total"`
	Items []struct {
		Index     int    `json:"index"`
		Serial    int    `json:"serial"`
		Name      string `json:"name"`
		DropLevel int    `json:"drop_level"`
		Category  string `json:"category"`
	} `json:"items"`
}

func TestCatalogSearch(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/items?limit=50", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if result.Total == 0 {
		t.Fatal("Expected a non-empty catalog on staging")
	}

	if !sort.SliceIsSorted(result.Items, func(i, j int) bool {
		return result.Items[i].DropLevel < result.Items[j].DropLevel
	}) {
		t.Error("Expected items sorted by drop level ascending")
	}

	t.Run("GetByIndex", func(t *testing.T) {
		first := result.Items[0]
		resp, body := makeRequest(t, "GET", fmt.Sprintf("/api/v1/items/%d", first.Index), nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
	})

	t.Run("GetBySerial", func(t *testing.T) {
		first := result.Items[0]
		resp, body := makeRequest(t, "GET", fmt.Sprintf("/api/v1/items/serial/%d", first.Serial), nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
	})

	t.Run("FilterByCategory", func(t *testing.T) {
		category := result.Items[0].Category
		if category == "" {
			t.Skip("first item has no category")
		}

		resp, body := makeRequest(t, "GET", "/api/v1/items?category="+url.QueryEscape(category), nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", resp.StatusCode)
		}

		var filtered searchResponse
		if err := json.Unmarshal(body, &filtered); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		for _, it := range filtered.Items {
			if it.Category != category {
				t.Errorf("Item %q has category %q, expected %q", it.Name, it.Category, category)
			}
		}
	})
}

func TestCatalogEndpoints(t *testing.T) {
	for _, path := range []string{
		"/api/v1/items/categories",
		"/api/v1/items/suggest?q=a",
		"/api/v1/catalog/status",
	} {
		t.Run(path, func(t *testing.T) {
			resp, body := makeRequest(t, "GET", path, nil)
			if resp.StatusCode != http.StatusOK {
				t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
			}
		})
	}
}

func TestInvalidSortRejected(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/items?sort=weight", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestFeeds(t *testing.T) {
	// Feeds are optional on staging; a missing file is a 404, never a 5xx
	for _, path := range []string{"/api/v1/news", "/api/v1/news/latest", "/api/v1/diff"} {
		t.Run(path, func(t *testing.T) {
			resp, body := makeRequest(t, "GET", path, nil)
			if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
				t.Errorf("Expected status 200 or 404, got %d. Body: %s", resp.StatusCode, string(body))
			}
		})
	}
}
