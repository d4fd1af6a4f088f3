package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "resume",
			objectType:  "text",
			identifier:  "123",
			paramsKey:   nil,
			expectedKey: "careeraccel:resume:text:123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "resume",
			objectType:  "text",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "careeraccel:resume:text:123",
		},
		{
			name:        "with one paramsKey",
			serviceName: "dashboard",
			objectType:  "skills",
			identifier:  "frontend",
			paramsKey:   []string{"top12"},
			expectedKey: "careeraccel:dashboard:skills:frontend:top12",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "resume",
			objectType:  "text",
			identifier:  "abc",
			paramsKey:   []string{"classic", "gpt-4o-mini"},
			expectedKey: "careeraccel:resume:text:abc:classic_gpt-4o-mini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestContentHash(t *testing.T) {
	const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := ContentHash(nil); got != emptySHA256 {
		t.Errorf("ContentHash(nil) = %v, want %v", got, emptySHA256)
	}
	if ContentHash([]byte("a")) == ContentHash([]byte("b")) {
		t.Error("different payloads must hash differently")
	}
}
