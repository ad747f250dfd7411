package xprop_test

import "errors"

type UserInfo struct {
	Age   int
	Email string `json:"mail"`
}

type Base struct {
	ID int
}

type User struct {
	*Base
	Name     string
	UserInfo *UserInfo
	AttrMap  map[string]any
	Scores   map[int]float64
	Loves    []string
	Grid     [2][2]int
	Extra    any
	vip      bool
	nickname string
}

func (u User) IsVip() bool { return u.vip }

func (u *User) GetNick() string { return u.nickname }

func (u *User) SetNick(s string) { u.nickname = s }

func (u User) Checked() (string, error) {
	if u.Name == "" {
		return "", errors.New("no name")
	}
	return "ok:" + u.Name, nil
}

func newUser() *User {
	return &User{
		Base:     &Base{ID: 1},
		Name:     "张三",
		UserInfo: &UserInfo{Age: 28, Email: "zs@example.com"},
		AttrMap:  map[string]any{"蜀国": "刘备", "空": nil},
		Scores:   map[int]float64{2: 99.5},
		Loves:    []string{"篮球", "足球"},
		Grid:     [2][2]int{{1, 2}, {3, 4}},
		Extra:    map[string]int{"k": 7},
		vip:      true,
		nickname: "小张",
	}
}
