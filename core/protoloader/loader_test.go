/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Tabulate Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package protoloader

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/google/tabulate/core/columns"
)

// testRegistry builds a registry holding shop.OrderBook, a two-level
// hierarchy: the book's region plus a repeated list of orders.
func testRegistry(t *testing.T) *protoregistry.Files {
	t.Helper()

	scalar := func(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			Number:   proto.Int32(number),
			Type:     typ.Enum(),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			JsonName: proto.String(name),
		}
	}

	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("shop.proto"),
		Package: proto.String("shop"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("OrderBook"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalar("region", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					{
						Name:     proto.String("orders"),
						Number:   proto.Int32(2),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
						TypeName: proto.String(".shop.Order"),
						JsonName: proto.String("orders"),
					},
				},
			},
			{
				Name: proto.String("Order"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalar("product", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalar("amount", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
					scalar("qty", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				},
			},
		},
	}

	fd, err := protodesc.NewFile(fdp, nil)
	if err != nil {
		t.Fatalf("protodesc.NewFile: %v", err)
	}
	registry := new(protoregistry.Files)
	if err := registry.RegisterFile(fd); err != nil {
		t.Fatalf("RegisterFile: %v", err)
	}
	return registry
}

func TestLoadTextprotoAsTable(t *testing.T) {
	loader := NewLoader(testRegistry(t))

	data := []byte(`
region: "west"
orders { product: "bolt" amount: 10.5 qty: 3 }
orders { product: "nut" amount: 2.5 qty: 7 }
`)
	dt, err := loader.LoadTextprotoAsTable(data, "shop.OrderBook")
	if err != nil {
		t.Fatalf("LoadTextprotoAsTable: %v", err)
	}
	if dt.Length() != 2 {
		t.Fatalf("expected 2 denormalized rows, got %d", dt.Length())
	}

	// Parent fields broadcast to every child row.
	for i := uint32(0); i < 2; i++ {
		if s, _ := dt.GetColumn("region").GetString(i); s != "west" {
			t.Errorf("row %d region: got %q, want %q", i, s, "west")
		}
	}

	amount, ok := dt.GetColumn("amount").(*columns.Float64Column)
	if !ok {
		t.Fatalf("amount should be a float64 column")
	}
	if v, _ := amount.GetValue(0); v != 10.5 {
		t.Errorf("amount row 0: got %v, want 10.5", v)
	}
	if _, ok := dt.GetColumn("qty").(*columns.Uint32Column); !ok {
		t.Errorf("qty should be a uint32 column")
	}
	if _, ok := dt.GetColumn("product").(*columns.StringColumn); !ok {
		t.Errorf("product should be a string column")
	}
}

func TestLoadTextprotoEmptyChildList(t *testing.T) {
	loader := NewLoader(testRegistry(t))

	dt, err := loader.LoadTextprotoAsTable([]byte(`region: "north"`), "shop.OrderBook")
	if err != nil {
		t.Fatalf("LoadTextprotoAsTable: %v", err)
	}
	if dt.Length() != 1 {
		t.Fatalf("expected 1 row for a book with no orders, got %d", dt.Length())
	}
	if !dt.GetColumn("amount").IsNull(0) {
		t.Errorf("child numeric cell should be null when the child list is empty")
	}
	if s, _ := dt.GetColumn("region").GetString(0); s != "north" {
		t.Errorf("region: got %q, want %q", s, "north")
	}
}

func TestFindLinearHierarchy(t *testing.T) {
	loader := NewLoader(testRegistry(t))
	desc, err := loader.registry.FindDescriptorByName("shop.OrderBook")
	if err != nil {
		t.Fatalf("FindDescriptorByName: %v", err)
	}
	levels := loader.FindLinearHierarchy(desc.(protoreflect.MessageDescriptor))
	if len(levels) != 2 {
		t.Fatalf("expected 2 hierarchy levels, got %d", len(levels))
	}
	if levels[0].FieldDesc == nil || string(levels[0].FieldDesc.Name()) != "orders" {
		t.Errorf("root level should descend through the orders field")
	}
	if len(levels[1].ScalarFields) != 3 {
		t.Errorf("leaf level should have 3 scalar fields, got %d", len(levels[1].ScalarFields))
	}
}

func TestParseTextprotoMissingMessage(t *testing.T) {
	registry := new(protoregistry.Files)
	loader := NewLoader(registry)

	_, err := loader.ParseTextproto([]byte(`name: "test"`), "unknown.Message")
	if err == nil {
		t.Error("expected error for unknown message type, got nil")
	}
}

func TestGetRegisteredMessages(t *testing.T) {
	loader := NewLoader(testRegistry(t))
	messages := loader.GetRegisteredMessages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 registered messages, got %v", messages)
	}
}
