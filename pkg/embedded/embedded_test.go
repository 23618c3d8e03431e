package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func reset(t *testing.T) {
	t.Helper()
	dataFS, initialized = nil, false
	t.Cleanup(func() { dataFS, initialized = nil, false })
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/resources.yaml": {Data: []byte("version: 1\n")},
		"data/extra/a.txt":    {Data: []byte("a")},
	}
}

func TestIsInitialized(t *testing.T) {
	reset(t)
	if IsInitialized() {
		t.Error("IsInitialized() = true before Init()")
	}
	Init(testFS())
	if !IsInitialized() {
		t.Error("IsInitialized() = false after Init()")
	}
}

func TestNotInitialized(t *testing.T) {
	reset(t)

	if _, err := Open("data/resources.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/resources.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/resources.yaml") {
		t.Error("Exists() = true before Init()")
	}
}

func TestReadFile(t *testing.T) {
	reset(t)
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"manifest", "data/resources.yaml", "version: 1\n", false},
		{"dot prefix", "./data/extra/a.txt", "a", false},
		{"missing", "data/none.yaml", "", true},
		{"wrong prefix", "assets/Menu/SpiderCard.png", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOpenMissing(t *testing.T) {
	reset(t)
	Init(testFS())

	if _, err := Open("data/none.yaml"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() error = %v, want fs.ErrNotExist", err)
	}
	if !Exists("data/extra/a.txt") || Exists("data/extra/b.txt") {
		t.Error("Exists() does not match the file system")
	}
}

func TestManifest(t *testing.T) {
	reset(t)
	Init(testFS())

	data, err := Manifest()
	if err != nil {
		t.Fatalf("Manifest() error: %v", err)
	}
	if string(data) != "version: 1\n" {
		t.Errorf("Manifest() = %q", data)
	}
}
