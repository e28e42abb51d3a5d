package assets

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	tests := []struct {
		name      string
		styleName string
		wantErr   error
	}{
		{
			name:      "telegraph style returns content",
			styleName: "telegraph",
			wantErr:   nil,
		},
		{
			name:      "plain style returns content",
			styleName: "plain",
			wantErr:   nil,
		},
		{
			name:      "nonexistent style returns ErrStyleNotFound",
			styleName: "nonexistent",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "empty name returns ErrInvalidAssetName",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "path traversal returns ErrInvalidAssetName",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "valid name with hyphen",
			styleName: "my-style",
			wantErr:   ErrStyleNotFound, // valid name but doesn't exist
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := LoadStyle(tt.styleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}

			if content == "" {
				t.Errorf("LoadStyle(%q) returned empty content", tt.styleName)
			}
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	tests := []struct {
		name         string
		templateName string
		wantErr      error
	}{
		{
			name:         "preview template returns content",
			templateName: "preview",
			wantErr:      nil,
		},
		{
			name:         "nonexistent template returns ErrTemplateNotFound",
			templateName: "nonexistent",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "empty name returns ErrInvalidAssetName",
			templateName: "",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "path traversal returns ErrInvalidAssetName",
			templateName: "../secret",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := LoadTemplate(tt.templateName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}

			if content == "" {
				t.Errorf("LoadTemplate(%q) returned empty content", tt.templateName)
			}
		})
	}
}

func TestLoadTemplate_PreviewContent(t *testing.T) {
	content, err := LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%s) error: %v", DefaultTemplateName, err)
	}

	// Verify template contains the expected Go template structure
	expectedParts := []string{
		"<!DOCTYPE html>",
		"{{.Title}}",
		"{{.CSS}}",
		"{{.Body}}",
	}

	for _, part := range expectedParts {
		if !strings.Contains(content, part) {
			t.Errorf("preview template should contain %q", part)
		}
	}
}

func TestListStyles(t *testing.T) {
	got := ListStyles()

	want := []string{"plain", "telegraph"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListStyles() = %v, want %v", got, want)
	}
}

func TestDefaultNamesResolve(t *testing.T) {
	if _, err := LoadStyle(DefaultStyleName); err != nil {
		t.Errorf("LoadStyle(DefaultStyleName) error = %v", err)
	}
	if _, err := LoadTemplate(DefaultTemplateName); err != nil {
		t.Errorf("LoadTemplate(DefaultTemplateName) error = %v", err)
	}
}
