// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package svn

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// mockResponse represents a mocked command response.
type mockResponse struct {
	output []byte
	err    error
}

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	// Map command string to response
	responses map[string]mockResponse
}

// NewMockExecutor creates a new MockExecutor with empty responses.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		responses: make(map[string]mockResponse),
	}
}

// AddResponse registers a mock response for a command.
func (m *MockExecutor) AddResponse(name string, args []string, output []byte, err error) {
	key := m.buildKey(name, args)
	m.responses[key] = mockResponse{output: output, err: err}
}

// Execute returns the mocked response for the given command.
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	key := m.buildKey(name, args)
	if resp, ok := m.responses[key]; ok {
		return resp.output, resp.err
	}
	return nil, fmt.Errorf("unexpected command: %s", key)
}

// buildKey constructs a lookup key from command name and args.
func (m *MockExecutor) buildKey(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

const sampleInfo = `Path: .
Working Copy Root Path: /home/dev/project
URL: https://svn.example.org/project/trunk
Repository Root: https://svn.example.org/project
Revision: 4168
Node Kind: directory
Last Changed Author: dev
Last Changed Rev: 4151
Last Changed Date: 2026-08-12 09:14:02 +0200
`

func TestClient_LastChangedRevision(t *testing.T) {
	tests := []struct {
		name     string
		mockResp string
		mockErr  error
		want     int
		wantErr  bool
		errCheck func(error) bool
	}{
		{
			name:     "standard info output",
			mockResp: sampleInfo,
			want:     4151,
		},
		{
			name:     "output without revision line",
			mockResp: "Path: .\nNode Kind: directory\n",
			wantErr:  true,
			errCheck: func(err error) bool { return errors.Is(err, ErrNoRevision) },
		},
		{
			name:    "command failure",
			mockErr: errors.New("exit status 1"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockExecutor()
			mock.AddResponse("svn", []string{"info", "--non-interactive", "/wc"}, []byte(tt.mockResp), tt.mockErr)

			client := NewClient("svn", mock)
			got, err := client.LastChangedRevision("/wc")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errCheck != nil && !tt.errCheck(err) {
					t.Errorf("error type check failed for: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got revision %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClient_WorkingCopyRevision(t *testing.T) {
	tests := []struct {
		name     string
		mockResp string
		want     int
		wantErr  bool
	}{
		{name: "clean checkout", mockResp: "4168\n", want: 4168},
		{name: "modified working copy", mockResp: "4168M\n", want: 4168},
		{name: "mixed revisions keep highest", mockResp: "4123:4168MS\n", want: 4168},
		{name: "unversioned directory", mockResp: "Unversioned directory\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockExecutor()
			mock.AddResponse("svnversion", []string{"/wc"}, []byte(tt.mockResp), nil)

			client := NewClient("svn", mock)
			got, err := client.WorkingCopyRevision("/wc")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrNoRevision) {
					t.Errorf("expected ErrNoRevision, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got revision %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClient_PreviousDiffRange(t *testing.T) {
	mock := NewMockExecutor()
	mock.AddResponse("svn", []string{"info", "--non-interactive", "/wc"}, []byte(sampleInfo), nil)
	mock.AddResponse("svnversion", []string{"/wc"}, []byte("4168M\n"), nil)

	client := NewClient("svn", mock)
	start, end, err := client.PreviousDiffRange("/wc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != 4150 {
		t.Errorf("got start %d, want 4150", start)
	}
	if end != 4168 {
		t.Errorf("got end %d, want 4168", end)
	}
}

func TestClient_PreviousDiffRange_FirstRevision(t *testing.T) {
	mock := NewMockExecutor()
	mock.AddResponse("svn", []string{"info", "--non-interactive", "/wc"},
		[]byte("Last Changed Rev: 1\n"), nil)

	client := NewClient("svn", mock)
	_, _, err := client.PreviousDiffRange("/wc")
	if !errors.Is(err, ErrNoRevision) {
		t.Errorf("expected ErrNoRevision for revision 1, got: %v", err)
	}
}

func TestClient_Status(t *testing.T) {
	output := "M       src/main.c\nA       src/new.c\n?       scratch.txt\n"
	mock := NewMockExecutor()
	mock.AddResponse("svn", []string{"status", "--non-interactive", "/wc"}, []byte(output), nil)

	client := NewClient("svn", mock)
	files, err := client.Status("/wc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	if files[0].Code != "M" || files[0].Path != "src/main.c" {
		t.Errorf("unexpected first status: %+v", files[0])
	}
}
