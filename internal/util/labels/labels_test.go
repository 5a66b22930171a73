package labels

import "testing"

func TestForInstance(t *testing.T) {
	got := ForInstance("gpu-box")

	if got[KeyManagedBy] != ManagedByLlamaup {
		t.Errorf("managed-by = %q", got[KeyManagedBy])
	}
	if got[KeyInstance] != "gpu-box" {
		t.Errorf("instance = %q", got[KeyInstance])
	}
}

func TestIsManaged(t *testing.T) {
	cases := []struct {
		name   string
		labels map[string]string
		want   bool
	}{
		{"llamaup labels", ForInstance("x"), true},
		{"foreign labels", map[string]string{"managed-by": "terraform"}, false},
		{"no labels", nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsManaged(c.labels); got != c.want {
				t.Errorf("IsManaged(%v) = %v, want %v", c.labels, got, c.want)
			}
		})
	}
}
