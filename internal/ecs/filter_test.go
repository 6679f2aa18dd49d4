package ecs

import (
	"reflect"
	"testing"
)

type widget struct{}

func (*widget) ComponentName() string { return "widget" }

type gadget struct{}

func (*gadget) ComponentName() string { return "gadget" }

func TestFilterMatchesAllOf(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	widgetType := reflect.TypeOf((*widget)(nil))
	gadgetType := reflect.TypeOf((*gadget)(nil))
	filter := BuildFilter(w.Registry(), []FilterClauseDecl{
		{Kind: ClauseKindAllOf, Types: []reflect.Type{widgetType, gadgetType}},
	})

	both := w.AddEntity(&widget{}, &gadget{})
	onlyWidget := w.AddEntity(&widget{})

	if !filter.Matches(both) {
		t.Fatalf("expected entity with both components to match all_of")
	}
	if filter.Matches(onlyWidget) {
		t.Fatalf("expected entity missing gadget to not match all_of")
	}
}

func TestFilterMatchesNoneOf(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	widgetType := reflect.TypeOf((*widget)(nil))
	filter := BuildFilter(w.Registry(), []FilterClauseDecl{
		{Kind: ClauseKindNoneOf, Types: []reflect.Type{widgetType}},
	})

	clean := w.AddEntity(&gadget{})
	tainted := w.AddEntity(&widget{}, &gadget{})

	if !filter.Matches(clean) {
		t.Fatalf("expected entity without widget to match none_of")
	}
	if filter.Matches(tainted) {
		t.Fatalf("expected entity with widget to fail none_of")
	}
}

func TestFilterIsNever(t *testing.T) {
	f := BuildFilter(NewRegistry(), []FilterClauseDecl{{Kind: ClauseKindNone}})
	if !f.IsNever() {
		t.Fatalf("expected a none clause to mark the filter as never-matching")
	}
}

func TestFilterSignatureCollapsesAccessMode(t *testing.T) {
	r := NewRegistry()
	widgetType := reflect.TypeOf((*widget)(nil))

	read := BuildFilter(r, []FilterClauseDecl{
		{Kind: ClauseKindAllOf, Access: AccessModeRead, Types: []reflect.Type{widgetType}},
	})
	write := BuildFilter(r, []FilterClauseDecl{
		{Kind: ClauseKindAllOf, Access: AccessModeWrite, Types: []reflect.Type{widgetType}},
	})

	if read.Signature() != write.Signature() {
		t.Fatalf("expected read and write access of the same clause to share a Context signature")
	}
}

func TestFilterSignatureDiffersByClauseShape(t *testing.T) {
	r := NewRegistry()
	widgetType := reflect.TypeOf((*widget)(nil))

	allOf := BuildFilter(r, []FilterClauseDecl{
		{Kind: ClauseKindAllOf, Types: []reflect.Type{widgetType}},
	})
	noneOf := BuildFilter(r, []FilterClauseDecl{
		{Kind: ClauseKindNoneOf, Types: []reflect.Type{widgetType}},
	})

	if allOf.Signature() == noneOf.Signature() {
		t.Fatalf("expected all_of and none_of over the same component to get distinct signatures")
	}
}
