package expert

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestNamingConversion(t *testing.T) {
	cases := []struct {
		in       string
		internal string
		external string
	}{
		{"gpa", "Gpa", "gpa"},
		{"attendanceRate", "AttendanceRate", "attendanceRate"},
		{"Gpa", "Gpa", "gpa"},
		{"", "", ""},
		{"x", "X", "x"},
		{"2ndSemester", "2ndSemester", "2ndSemester"}, // no case distinction, untouched
		{"énergie", "Énergie", "énergie"},
	}
	for _, c := range cases {
		if got := ToInternalForm(c.in); got != c.internal {
			t.Errorf("ToInternalForm(%q) = %q, want %q", c.in, got, c.internal)
		}
		if got := ToExternalForm(c.in); got != c.external {
			t.Errorf("ToExternalForm(%q) = %q, want %q", c.in, got, c.external)
		}
	}
}

func TestNamingRoundTrip(t *testing.T) {
	for _, s := range []string{"gpa", "worksFullTime", "x", "2nd", "_hidden"} {
		if got := ToExternalForm(ToInternalForm(s)); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestValuesEqual_Strict(t *testing.T) {
	cases := []struct {
		a, b  any
		equal bool
	}{
		{"Low", "Low", true},
		{"Low", "low", false},
		{float64(3), float64(3), true},
		{"3", float64(3), false},
		{"true", true, false},
		{true, true, true},
		{true, false, false},
		{nil, nil, true},
		{nil, "x", false},
		{[]any{"a"}, []any{"a"}, true},
		{map[string]any{"k": float64(1)}, map[string]any{"k": float64(1)}, true},
	}
	for _, c := range cases {
		if got := ValuesEqual(c.a, c.b); got != c.equal {
			t.Errorf("ValuesEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.equal)
		}
	}
}

func TestIsNull_TypedNil(t *testing.T) {
	var p *float64
	var s []string
	if !IsNull(nil) || !IsNull(p) || !IsNull(s) {
		t.Error("expected nil values detected")
	}
	if IsNull("") || IsNull(false) || IsNull(float64(0)) {
		t.Error("zero values are not null")
	}
}

func TestNormalizeFacts(t *testing.T) {
	facts := Facts{
		"gpa":           "Low",
		"attendance":    nil,
		"WorksFullTime": true,
	}
	got := NormalizeFacts(facts)
	if len(got) != 2 {
		t.Fatalf("expected 2 facts, got %d: %v", len(got), got)
	}
	if got["Gpa"] != "Low" {
		t.Errorf("expected Gpa=Low, got %v", got["Gpa"])
	}
	if got["WorksFullTime"] != true {
		t.Errorf("expected WorksFullTime=true, got %v", got["WorksFullTime"])
	}
	if _, ok := got["Attendance"]; ok {
		t.Error("null fact should be dropped")
	}
}

func TestFactList_OrderPreserved(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var l FactList
		if err := json.Unmarshal([]byte(`{}`), &l); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		out, _ := json.Marshal(l)
		if string(out) != `{}` {
			t.Errorf("expected {}, got %s", out)
		}
	})

	t.Run("Single", func(t *testing.T) {
		var l FactList
		if err := json.Unmarshal([]byte(`{"Gpa":"Low"}`), &l); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		out, _ := json.Marshal(l)
		if string(out) != `{"Gpa":"Low"}` {
			t.Errorf("unexpected output %s", out)
		}
	})

	t.Run("Many", func(t *testing.T) {
		// 50 keys in an order a map would almost certainly scramble.
		src := "{"
		for i := 0; i < 50; i++ {
			if i > 0 {
				src += ","
			}
			src += fmt.Sprintf(`"Fact%02d":%d`, 49-i, i)
		}
		src += "}"

		var l FactList
		if err := json.Unmarshal([]byte(src), &l); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if len(l) != 50 {
			t.Fatalf("expected 50 entries, got %d", len(l))
		}
		for i, e := range l {
			want := fmt.Sprintf("Fact%02d", 49-i)
			if e.Name != want {
				t.Fatalf("entry %d: expected %s, got %s", i, want, e.Name)
			}
		}
		out, err := json.Marshal(l)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(out) != src {
			t.Errorf("order not preserved:\n in: %s\nout: %s", src, out)
		}
	})

	t.Run("NotAnObject", func(t *testing.T) {
		var l FactList
		if err := json.Unmarshal([]byte(`[1,2]`), &l); err == nil {
			t.Error("expected error for non-object input")
		}
	})
}

func TestFactList_ToExternal(t *testing.T) {
	l := FactList{{Name: "Gpa", Value: "Medium"}, {Name: "WorksFullTime", Value: false}}
	ext := l.ToExternal()
	if ext[0].Name != "gpa" || ext[1].Name != "worksFullTime" {
		t.Errorf("unexpected external names: %v", ext)
	}
	// original untouched
	if l[0].Name != "Gpa" {
		t.Errorf("source list modified: %v", l)
	}
}
