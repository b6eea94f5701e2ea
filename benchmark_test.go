package guid

import (
	"testing"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := New()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkGenerator_New(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := gen.New()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkFromComponents(b *testing.B) {
	d4 := [8]byte{0xA0, 0xF4, 0xDD, 0x7D, 0x51, 0x2D, 0xD2, 0x61}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FromComponents(0x87935CDE, 0x7094, 0x4C2B, d4)
	}
}

func BenchmarkGUID_String(b *testing.B) {
	g := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := "87935CDE-7094-4C2B-A0F4-DD7D512DD261"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Invalid(b *testing.B) {
	s := "87935CDE-7094-4C2B-A0F4-DD7D512DD26Z"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(s); err == nil {
			b.Fatal("expected parse error")
		}
	}
}

func BenchmarkGUID_Data1(b *testing.B) {
	g := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.Data1()
	}
}

func BenchmarkGUID_Data4(b *testing.B) {
	g := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.Data4()
	}
}

func BenchmarkGUID_MarshalText(b *testing.B) {
	g := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := g.MarshalText()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGUID_UnmarshalText(b *testing.B) {
	text := []byte("87935CDE-7094-4C2B-A0F4-DD7D512DD261")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var g GUID
		if err := g.UnmarshalText(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGUID_MarshalBinary(b *testing.B) {
	g := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := g.MarshalBinary()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGUID_EncodeToHex(b *testing.B) {
	g := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.EncodeToHex()
	}
}

func BenchmarkDecodeFromHex(b *testing.B) {
	s := "87935cde70944c2ba0f4dd7d512dd261"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := DecodeFromHex(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGUID_Compare(b *testing.B) {
	g1 := Must(New())
	g2 := Must(New())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g1.Compare(g2)
	}
}
