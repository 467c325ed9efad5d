package api_test

import (
	"testing"

	"github.com/stockd/inventory-service/api"
)

type TestObj struct {
	PlainText  string
	SensText   string `sensitive:"true"`
	PlainInt   int
	SensInt    int `sensitive:"true"`
	PlainFloat float32
	SensFloat  float32 `sensitive:"true"`
	SensBool   bool    `sensitive:"true"`
	Nested     NestedObj
}

type NestedObj struct {
	PlainText string
	SensText  string `sensitive:"true"`
}

func TestScrub(t *testing.T) {
	tests := []struct {
		input TestObj
		want  TestObj
	}{
		{
			input: TestObj{
				PlainText: "plaintext", SensText: "abc",
				PlainInt: 123, SensInt: 123,
				PlainFloat: 1.23, SensFloat: 1.23,
				SensBool: true,
				Nested:   NestedObj{PlainText: "plaintext", SensText: "abc"},
			},
			want: TestObj{
				PlainText: "plaintext", SensText: "******",
				PlainInt: 123, SensInt: 0,
				PlainFloat: 1.23, SensFloat: 0.00,
				SensBool: false,
				Nested:   NestedObj{PlainText: "plaintext", SensText: "******"},
			},
		},
	}

	for _, test := range tests {
		api.Scrub(&test.input)
		if test.input != test.want {
			t.Errorf("\n got=[%+v]\nwant=[%+v]", test.input, test.want)
		}
	}
}
