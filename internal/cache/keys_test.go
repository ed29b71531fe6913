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
			serviceName: "assignment",
			objectType:  "session",
			identifier:  "01HZX",
			paramsKey:   nil,
			expectedKey: "quizassign:assignment:session:01HZX",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "assignment",
			objectType:  "lock",
			identifier:  "01HZX",
			paramsKey:   []string{},
			expectedKey: "quizassign:assignment:lock:01HZX",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "notify",
			objectType:  "feed",
			identifier:  "teacher-1",
			paramsKey:   []string{"v1", "recent"},
			expectedKey: "quizassign:notify:feed:teacher-1:v1_recent",
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
