package main

import (
	"reflect"
	"testing"
)

func TestReleaserReverseOrderOnce(t *testing.T) {
	var got []string
	var r releaser
	r.add(func() { got = append(got, "renderer") })
	r.add(func() { got = append(got, "framebuffer") })

	r.release()
	r.release()

	want := []string{"framebuffer", "renderer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("released %v, want %v", got, want)
	}
}

func TestReleaserEmpty(t *testing.T) {
	var r releaser
	r.release()
}
