package bytescan

import "testing"

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func TestPeekDoesNotConsume(t *testing.T) {
	t.Parallel()

	cur := New([]byte("ab"))

	for range 3 {
		b, ok := cur.Peek()
		if !ok || b != 'a' {
			t.Fatalf("Peek() = %q, %v; want 'a', true", b, ok)
		}
	}

	if b, ok := cur.Next(); !ok || b != 'a' {
		t.Fatalf("Next() = %q, %v; want 'a', true", b, ok)
	}
}

func TestNextExhaustsBuffer(t *testing.T) {
	t.Parallel()

	cur := New([]byte("xy"))

	want := []byte{'x', 'y'}
	for _, w := range want {
		b, ok := cur.Next()
		if !ok || b != w {
			t.Fatalf("Next() = %q, %v; want %q, true", b, ok, w)
		}
	}

	if _, ok := cur.Next(); ok {
		t.Fatalf("Next() after exhaustion reported ok")
	}

	if _, ok := cur.Peek(); ok {
		t.Fatalf("Peek() after exhaustion reported ok")
	}
}

func TestAccept(t *testing.T) {
	t.Parallel()

	cur := New([]byte(";x"))

	if !cur.Accept(';') {
		t.Fatalf("Accept(';') = false; want true")
	}

	if cur.Accept(';') {
		t.Fatalf("Accept(';') consumed a non-matching byte")
	}

	if b, ok := cur.Next(); !ok || b != 'x' {
		t.Fatalf("Next() = %q, %v; want 'x', true", b, ok)
	}
}

func TestTakeWhile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     string
		wantNext byte
	}{
		{name: "stops at boundary", input: "abc123", want: "abc", wantNext: '1'},
		{name: "empty run", input: "123", want: "", wantNext: '1'},
		{name: "consumes everything", input: "abc", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cur := New([]byte(tt.input))
			got := cur.TakeWhile(isLower)
			if string(got) != tt.want {
				t.Fatalf("TakeWhile() = %q; want %q", got, tt.want)
			}

			b, ok := cur.Next()
			if tt.wantNext == 0 {
				if ok {
					t.Fatalf("expected exhausted cursor, got %q", b)
				}

				return
			}

			if !ok || b != tt.wantNext {
				t.Fatalf("Next() = %q, %v; want %q, true", b, ok, tt.wantNext)
			}
		})
	}
}

func TestMustNext(t *testing.T) {
	t.Parallel()

	cur := New([]byte("#x"))
	cur.MustNext('#')
	cur.MustNext('x')
}

func TestMustNextPanicsOnMismatch(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("MustNext on a mismatched byte did not panic")
		}
	}()

	New([]byte("x")).MustNext('#')
}

func TestMustNextPanicsOnExhaustedBuffer(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("MustNext on an empty buffer did not panic")
		}
	}()

	New(nil).MustNext('#')
}
