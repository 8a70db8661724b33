package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  *NotFoundError
		want string
	}{
		{
			name: "with ref",
			err:  NewNotFoundError("firmware/MT6781_Android_scatter.xml", "main"),
			want: "firmware/MT6781_Android_scatter.xml not found at ref main",
		},
		{
			name: "local file has no ref",
			err:  NewNotFoundError("MT6781_Android_scatter.xml", ""),
			want: "MT6781_Android_scatter.xml not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "typed NotFoundError",
			err:  NewNotFoundError("resource", "ref"),
			want: true,
		},
		{
			name: "wrapped NotFoundError",
			err:  fmt.Errorf("reading scatter: %w", NewNotFoundError("resource", "ref")),
			want: true,
		},
		{
			name: "wrapped fs.ErrNotExist",
			err:  fmt.Errorf("open x.xml: %w", fs.ErrNotExist),
			want: true,
		},
		{
			name: "message mentioning not found is not enough",
			err:  errors.New("file not found in archive"),
			want: false,
		},
		{
			name: "unrelated error",
			err:  errors.New("permission denied"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNotFound(tt.err)
			if got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
