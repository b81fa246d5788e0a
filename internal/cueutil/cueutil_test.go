// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Settings: {
	name!:  =~"^[a-z]+$"
	count?: int & >=0
	tags?: [...string]
}
`

type settings struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		want     settings
		wantErrs []string
	}{
		{
			name: "valid document",
			data: `name: "abc", count: 2, tags: ["x"]`,
			want: settings{Name: "abc", Count: 2, Tags: []string{"x"}},
		},
		{
			name: "optional fields omitted",
			data: `name: "abc"`,
			want: settings{Name: "abc"},
		},
		{
			name:     "constraint violation has path",
			data:     `name: "abc", count: -1`,
			wantErrs: []string{"test.cue", "count"},
		},
		{
			name:     "closed definition rejects unknown field",
			data:     `name: "abc", colour: "red"`,
			wantErrs: []string{"colour", "not allowed"},
		},
		{
			name:     "list element error has index",
			data:     `name: "abc", tags: ["x", 1]`,
			wantErrs: []string{"tags[1]"},
		},
		{
			name:     "missing required field",
			data:     `count: 1`,
			wantErrs: []string{"name"},
		},
		{
			name:     "syntax error",
			data:     `name: `,
			wantErrs: []string{"test.cue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode[settings](testSchema, []byte(tt.data), "#Settings", WithFilename("test.cue"))
			if len(tt.wantErrs) > 0 {
				if err == nil {
					t.Fatalf("Decode() = %+v, want error", got)
				}
				for _, want := range tt.wantErrs {
					if !strings.Contains(err.Error(), want) {
						t.Errorf("error %q does not contain %q", err.Error(), want)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Name != tt.want.Name || got.Count != tt.want.Count || strings.Join(got.Tags, ",") != strings.Join(tt.want.Tags, ",") {
				t.Errorf("Decode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecode_Map(t *testing.T) {
	t.Parallel()

	got, err := Decode[map[string]any](testSchema, []byte(`name: "abc"`), "#Settings")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 1 || got["name"] != "abc" {
		t.Errorf("Decode() = %v, want only name", got)
	}
}

func TestDecode_MissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := Decode[settings](testSchema, []byte(`name: "abc"`), "#Nope")
	if err == nil || !strings.Contains(err.Error(), "#Nope") {
		t.Errorf("Decode() error = %v, want missing definition error", err)
	}
}

func TestDecode_FileSizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte(`name: "abc"`)
	_, err := Decode[settings](testSchema, data, "#Settings", WithMaxFileSize(int64(len(data)-1)))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("Decode() error = %v, want ErrFileTooLarge", err)
	}
	if _, err := Decode[settings](testSchema, data, "#Settings", WithMaxFileSize(int64(len(data)))); err != nil {
		t.Errorf("Decode() at exact limit error = %v", err)
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "test.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}

	original := errors.New("some error")
	err := FormatError(original, "test.cue")
	if !errors.Is(err, original) {
		t.Errorf("FormatError() = %v, want it to wrap the original error", err)
	}
	if !strings.HasPrefix(err.Error(), "test.cue: ") {
		t.Errorf("FormatError() = %q, want file name prefix", err.Error())
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"name"}, "name"},
		{[]string{"log", "level"}, "log.level"},
		{[]string{"tags", "1"}, "tags[1]"},
		{[]string{"a", "0", "b", "12"}, "a[0].b[12]"},
		{[]string{"0"}, "0"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "f.cue"); err != nil {
		t.Errorf("at limit: %v", err)
	}
	if err := CheckFileSize(nil, 100, "f.cue"); err != nil {
		t.Errorf("empty: %v", err)
	}

	err := CheckFileSize(make([]byte, 101), 100, "f.cue")
	var tooLarge *FileTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("CheckFileSize() = %v, want *FileTooLargeError", err)
	}
	if tooLarge.Size != 101 || tooLarge.Max != 100 || tooLarge.Filename != "f.cue" {
		t.Errorf("FileTooLargeError = %+v", tooLarge)
	}
}
