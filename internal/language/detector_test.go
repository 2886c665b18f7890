package language

import (
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "english",
			input: "The quick brown fox jumps over the lazy dog while the farmer watches from the porch.",
			want:  "en",
		},
		{
			name:  "russian",
			input: "Происхождение названия Село в советское время в официальных документах на русском языке именовалось «Возрожденовка» Акт проверки Конгрессовского сахарного комбината.",
			want:  "ru",
		},
		{
			name:  "persian",
			input: "حدود استان امروزی فارس در جنوب ایران هستند. فارسی میانه به عنوان گویش رسمی در زمان ساسانیان در دیگر سرزمین‌های ایرانی گسترش زیادی یافت به طوری که در خراسان بزرگ جایگزین زبان‌های پارتی و بلخی شد و بخش‌های بزرگی از خوارزمی‌زبانان و سغدی‌زبانان نیز فارسی‌زبان شدند.[۱۱] گویشی از فارسی میانه که بعدها فارسی دری نام گرفت پس از اسلام به عنوان گویش استاندارد نوشتاری در خراسان شکل گرفت و این بار با گسترش به سوی غرب به ناحیه پارس و دیگر نقاط ایران بازگشت.",
			want:  "pes",
		},
	}
	d := NewDetector(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(tt.input)
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}
			if got.Code != tt.want {
				t.Fatalf("code = %q, want %q", got.Code, tt.want)
			}
			if got.Name == "" {
				t.Fatal("expected language name")
			}
		})
	}
}

func TestDetectUndetectable(t *testing.T) {
	d := NewDetector(0)
	for _, in := range []string{"", "   ", "12345 !!! ???"} {
		if _, err := d.Detect(in); !errors.Is(err, ErrUndetectable) {
			t.Fatalf("Detect(%q) err = %v, want ErrUndetectable", in, err)
		}
	}
}

func TestDetectMinConfidence(t *testing.T) {
	got, err := NewDetector(1.01).Detect("The quick brown fox jumps over the lazy dog.")
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got.Reliable {
		t.Fatal("confidence above 1 should never be reached")
	}
}
