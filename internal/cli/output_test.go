package cli

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatResultLine(t *testing.T) {
	t.Parallel()
	got := FormatResultLine("Mat (loop)", big.NewInt(1_000_000), big.NewInt(1000), big.NewInt(875), 12*time.Microsecond)
	want := "Mat (loop): n=1000000, F(n)%1000=875 (12µs)"
	if got != want {
		t.Errorf("FormatResultLine() = %q, want %q", got, want)
	}
}

func TestDisplayResult(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		result   *big.Int
		details  bool
		contains []string
		excludes []string
	}{
		{
			name:     "Summary line",
			result:   big.NewInt(55),
			contains: []string{"Matrix: n=10, F(n)%1000000=55 (1ms)"},
			excludes: []string{"Result details"},
		},
		{
			name:     "Details",
			result:   big.NewInt(123456),
			details:  true,
			contains: []string{"--- Result details ---", "Value:     123,456", "Digits:    6", "Bits:      17"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplayResult(&buf, "Matrix", big.NewInt(10), big.NewInt(1_000_000), tt.result, time.Millisecond, tt.details)
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("Expected output to contain %q, but got:\n%s", s, output)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(output, s) {
					t.Errorf("Expected output not to contain %q, but got:\n%s", s, output)
				}
			}
		})
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayQuietResult(&buf, big.NewInt(362999010))
	if got := buf.String(); got != "362999010\n" {
		t.Errorf("DisplayQuietResult() = %q, want %q", got, "362999010\n")
	}
}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write result to file",
			outputFile: filepath.Join(tmpDir, "result.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				contentStr := string(content)
				for _, s := range []string{"# Strategy: Matrix", "# Type: u64", "F(20) mod 1000 =\n765\n"} {
					if !strings.Contains(contentStr, s) {
						t.Errorf("File should contain %q, got:\n%s", s, contentStr)
					}
				}
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "result.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := OutputConfig{OutputFile: tc.outputFile, Domain: "u64"}
			err := WriteResultToFile(big.NewInt(765), big.NewInt(20), big.NewInt(1000), time.Millisecond, "Matrix", cfg)
			if err != nil {
				t.Fatalf("WriteResultToFile() error = %v", err)
			}
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestWriteResultToFileUnwritablePath(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := OutputConfig{OutputFile: filepath.Join(blocker, "out.txt")}
	err := WriteResultToFile(big.NewInt(765), big.NewInt(20), big.NewInt(1000), time.Millisecond, "Matrix", cfg)
	if err == nil {
		t.Error("expected an error when the parent is a regular file")
	}
}
