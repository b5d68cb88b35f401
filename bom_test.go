package textfile_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"lesiw.io/textfile"
)

func TestDetectBOM(t *testing.T) {
	tests := []struct {
		name string
		data string
		want textfile.BOM
	}{
		{"empty", "", textfile.BOMIndeterminate},
		{"bom only", "\xEF\xBB\xBF", textfile.BOMPresent},
		{"bom and text", "\xEF\xBB\xBFhello", textfile.BOMPresent},
		{"partial bom", "\xEF\xBB", textfile.BOMAbsent},
		{"one byte", "a", textfile.BOMAbsent},
		{"text", "hello", textfile.BOMAbsent},
		{"bom later", "a\xEF\xBB\xBF", textfile.BOMAbsent},
		{"wrong third byte", "\xEF\xBB\xBE", textfile.BOMAbsent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := iotest.OneByteReader(strings.NewReader(tt.data))
			got, err := textfile.DetectBOM(r)
			if err != nil {
				t.Fatalf("DetectBOM() err: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectBOM(%q) = %v, want %v", tt.data, got, tt.want)
			}
			present, err := textfile.HasBOM(strings.NewReader(tt.data))
			if err != nil {
				t.Fatalf("HasBOM() err: %v", err)
			}
			if want := tt.want == textfile.BOMPresent; present != want {
				t.Errorf("HasBOM(%q) = %v, want %v", tt.data, present, want)
			}
		})
	}
}

func TestDetectBOMReadsThreeBytes(t *testing.T) {
	r := strings.NewReader("\xEF\xBB\xBFabc")
	if _, err := textfile.DetectBOM(r); err != nil {
		t.Fatalf("DetectBOM() err: %v", err)
	}
	if got, want := r.Len(), 3; got != want {
		t.Errorf("DetectBOM() left %d bytes, want %d", got, want)
	}
}

func TestDetectBOMErrors(t *testing.T) {
	if _, err := textfile.DetectBOM(nil); !errors.Is(
		err, textfile.ErrNilArgument,
	) {
		t.Errorf("DetectBOM(nil) err = %v, want ErrNilArgument", err)
	}
	if _, err := textfile.HasBOM(iotest.ErrReader(errBroken)); !errors.Is(
		err, errBroken,
	) {
		t.Errorf("HasBOM() err = %v, want %v", err, errBroken)
	}
}

func TestDetectFileBOM(t *testing.T) {
	fsys := newFS(t, map[string]string{
		"bom.txt":   "\xEF\xBB\xBFtext\r\n",
		"plain.txt": "text\n",
		"empty.txt": "",
	})
	tests := []struct {
		name string
		want textfile.BOM
	}{
		{"bom.txt", textfile.BOMPresent},
		{"plain.txt", textfile.BOMAbsent},
		{"empty.txt", textfile.BOMIndeterminate},
		{"missing.txt", textfile.BOMIndeterminate},
	}
	for _, tt := range tests {
		got, err := textfile.DetectFileBOM(t.Context(), fsys, tt.name)
		if err != nil {
			t.Fatalf("DetectFileBOM(%q) err: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("DetectFileBOM(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	ok, err := textfile.FileHasBOM(t.Context(), fsys, "bom.txt")
	if err != nil {
		t.Fatalf("FileHasBOM() err: %v", err)
	} else if !ok {
		t.Error("FileHasBOM(bom.txt) = false, want true")
	}
}
