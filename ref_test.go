package autosize

import "testing"

func TestRef(t *testing.T) {
	r := NewRef()
	if r.IsSet() {
		t.Error("new Ref IsSet() = true, want false")
	}
	if r.El() != nil {
		t.Error("new Ref El() != nil")
	}

	el := NewElement("box", Style{})
	r.Set(el)
	if !r.IsSet() {
		t.Error("IsSet() = false after Set")
	}
	if r.El() != el {
		t.Error("El() did not return the stored element")
	}
}
