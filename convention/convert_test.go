package convention

import (
	"errors"
	"testing"
)

// TestConvertChain walks one identifier through every convertible built-in,
// checking the rendering at each step.
func TestConvertChain(t *testing.T) {
	steps := []struct {
		target *Convention
		want   string
	}{
		{PascalCase, "ThisIsMyString"},
		{SnakeCase, "this_is_my_string"},
		{ScreamingSnakeCase, "THIS_IS_MY_STRING"},
		{CamelSnakeCase, "this_Is_My_String"},
		{PascalSnakeCase, "This_Is_My_String"},
		{KebabCase, "this-is-my-string"},
		{ScreamingKebabCase, "THIS-IS-MY-STRING"},
		{TrainCase, "This-Is-My-String"},
		{CamelCase, "thisIsMyString"},
	}

	current := CamelCase
	s := "thisIsMyString"

	for _, step := range steps {
		converted, err := current.ConvertTo(step.target, s)
		if err != nil {
			t.Fatalf("%s → %s: %v", current.Name(), step.target.Name(), err)
		}
		if converted != step.want {
			t.Fatalf("%s → %s: got %q; want %q",
				current.Name(), step.target.Name(), converted, step.want)
		}
		if !step.target.DoesFollow(converted) {
			t.Fatalf("%s: conversion result %q does not follow its own convention",
				step.target.Name(), converted)
		}
		current, s = step.target, converted
	}
}

// TestConvertRoundTrip checks that converting a conforming identifier from a
// convention to itself is the identity, for every explicit-separator built-in.
func TestConvertRoundTrip(t *testing.T) {
	tests := []struct {
		convention *Convention
		input      string
	}{
		{SnakeCase, "this_is_my_string"},
		{ScreamingSnakeCase, "THIS_IS_MY_STRING"},
		{CamelSnakeCase, "this_Is_My_String"},
		{PascalSnakeCase, "This_Is_My_String"},
		{KebabCase, "this-is-my-string"},
		{ScreamingKebabCase, "THIS-IS-MY-STRING"},
		{TrainCase, "This-Is-My-String"},
	}

	for _, tt := range tests {
		t.Run(tt.convention.Name(), func(t *testing.T) {
			if !tt.convention.DoesFollow(tt.input) {
				t.Fatalf("fixture %q does not follow %s", tt.input, tt.convention.Name())
			}
			got, err := tt.convention.ConvertTo(tt.convention, tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.input {
				t.Errorf("round trip changed %q to %q", tt.input, got)
			}
		})
	}
}

func TestConvertFlatCaseIsLossy(t *testing.T) {
	flat, err := CamelCase.ConvertTo(FlatCase, "thisIsMyString")
	if err != nil {
		t.Fatal(err)
	}
	if flat != "thisismystring" {
		t.Fatalf("got %q; want %q", flat, "thisismystring")
	}

	// Word breaks are gone; converting back cannot restore them.
	back, err := FlatCase.ConvertTo(CamelCase, flat)
	if err != nil {
		t.Fatal(err)
	}
	if back == "thisIsMyString" {
		t.Error("flat case recorded no boundaries; the original cannot come back")
	}
}

func TestConvertEmptyInput(t *testing.T) {
	_, err := CamelCase.ConvertTo(SnakeCase, "")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v; want ErrEmptyInput", err)
	}
}

func TestConvertSingleCharacter(t *testing.T) {
	got, err := CamelCase.ConvertTo(PascalCase, "x")
	if err != nil {
		t.Fatal(err)
	}
	if got != "X" {
		t.Errorf("got %q; want %q", got, "X")
	}
}
