package model

import (
	"reflect"
	"testing"
)

func TestFavoriteSet_WithWithout(t *testing.T) {
	base := NewFavoriteSet("ИС-12")

	added := base.With("П-21")
	if !added.Contains("П-21") || !added.Contains("ИС-12") {
		t.Errorf("With() = %v", added.Sorted())
	}
	if base.Contains("П-21") {
		t.Error("With() must not modify the receiver")
	}

	removed := added.Without("ИС-12")
	if removed.Contains("ИС-12") || !added.Contains("ИС-12") {
		t.Error("Without() must return a modified copy only")
	}
}

func TestFavoriteSet_SortedAndEqual(t *testing.T) {
	set := NewFavoriteSet("П-22", "ИС-11", "", "КС-31")

	if set.Len() != 3 {
		t.Fatalf("expected empty identifiers to be skipped, got %d members", set.Len())
	}

	expected := []string{"ИС-11", "КС-31", "П-22"}
	if got := set.Strings(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Strings() = %v, expected %v", got, expected)
	}

	if !set.Equal(NewFavoriteSet("КС-31", "П-22", "ИС-11")) {
		t.Error("sets with same members should be equal")
	}
	if set.Equal(NewFavoriteSet("КС-31")) {
		t.Error("sets with different members should not be equal")
	}
}

func TestFilterKnownGroups(t *testing.T) {
	got := FilterKnownGroups("ис")
	expected := []GroupID{"ИС-11", "ИС-12", "ИС-13"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FilterKnownGroups() = %v, expected %v", got, expected)
	}

	if len(FilterKnownGroups("")) != len(KnownGroups) {
		t.Error("empty query should return the whole catalog")
	}
	if !IsKnownGroup(DefaultGroup) {
		t.Error("default group should be in the catalog")
	}
}

func TestLesson_OrderedParts(t *testing.T) {
	lesson := Lesson{
		Number: 2,
		Time:   "10:10-11:40",
		Parts: map[LessonPart]*LessonDetails{
			LessonPartSub2: {Subject: "Сети"},
			LessonPartFull: nil,
			LessonPartSub1: {Subject: "Базы данных"},
		},
	}

	parts := lesson.OrderedParts()
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].Part != LessonPartSub1 || parts[1].Part != LessonPartSub2 {
		t.Errorf("unexpected order: %+v", parts)
	}
	if !lesson.IsSplit() {
		t.Error("lesson with subgroup details should be split")
	}

	whole := Lesson{Parts: map[LessonPart]*LessonDetails{LessonPartFull: {Subject: "Математика"}}}
	if whole.IsSplit() {
		t.Error("whole-group lesson should not be split")
	}
}
