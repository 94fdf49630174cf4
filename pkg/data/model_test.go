package data

import "testing"

func TestStripModel(t *testing.T) {
	strip := Strip{
		Index: 2,
		URL:   "https://example.com/strips/tira-03.jpg",
	}

	if strip.Downloaded() {
		t.Error("Expected strip without path to not be downloaded")
	}

	if strip.Name() != "tira-03.jpg" {
		t.Errorf("Expected Name 'tira-03.jpg', got '%s'", strip.Name())
	}

	strip.Path = "/tmp/tirinha-files/abc.jpg"
	if !strip.Downloaded() {
		t.Error("Expected strip with path to be downloaded")
	}
}

func TestStripNameIgnoresQuery(t *testing.T) {
	tests := map[string]string{
		"https://example.com/strips/tira.jpg?w=1200":   "tira.jpg",
		"https://example.com/strips/tira.png#destaque": "tira.png",
		"/quadrinhos/calvin.png?v=2":                   "calvin.png",
	}

	for raw, want := range tests {
		if name := (Strip{URL: raw}).Name(); name != want {
			t.Errorf("Name(%q) = '%s', want '%s'", raw, name, want)
		}
	}
}

func TestStripNameEmptyURL(t *testing.T) {
	if name := (Strip{}).Name(); name != "" {
		t.Errorf("Expected empty name, got '%s'", name)
	}
}

func TestNewStrips(t *testing.T) {
	urls := []string{"https://a/1.jpg", "https://a/2.jpg", "https://a/1.jpg"}

	strips := NewStrips(urls)

	if len(strips) != len(urls) {
		t.Fatalf("Expected %d strips, got %d", len(urls), len(strips))
	}

	for i, strip := range strips {
		if strip.Index != i {
			t.Errorf("Expected Index %d, got %d", i, strip.Index)
		}
		if strip.URL != urls[i] {
			t.Errorf("Expected URL '%s', got '%s'", urls[i], strip.URL)
		}
	}
}

func TestNewStripsEmpty(t *testing.T) {
	if strips := NewStrips(nil); len(strips) != 0 {
		t.Errorf("Expected 0 strips, got %d", len(strips))
	}
}
