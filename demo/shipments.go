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

package demo

import (
	_ "embed"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/google/tabulate/core/protoloader"
	"github.com/google/tabulate/core/tables"
)

//go:embed data/shipments.textproto
var shipmentsTextproto []byte

// CreateShipmentsTable loads the sample shipment manifest from embedded
// textproto. The manifest's repeated shipments are denormalized into one
// row per shipment, with the warehouse broadcast onto each row.
func CreateShipmentsTable() *tables.DataTable {
	loader := protoloader.NewLoader(shipmentsRegistry())
	table, err := loader.LoadTextprotoAsTable(shipmentsTextproto, "logistics.Manifest")
	if err != nil {
		panic(fmt.Sprintf("failed to load shipments textproto: %v", err))
	}
	return table
}

// shipmentsRegistry builds the descriptor registry for the shipment
// manifest schema. The descriptors are constructed at runtime so the demo
// needs no generated code.
func shipmentsRegistry() *protoregistry.Files {
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
		Name:    proto.String("logistics.proto"),
		Package: proto.String("logistics"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Manifest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalar("warehouse", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					{
						Name:     proto.String("shipments"),
						Number:   proto.Int32(2),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
						TypeName: proto.String(".logistics.Shipment"),
						JsonName: proto.String("shipments"),
					},
				},
			},
			{
				Name: proto.String("Shipment"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalar("carrier", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalar("weight_kg", 2, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
					scalar("packages", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
					scalar("destination", 4, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				},
			},
		},
	}

	fd, err := protodesc.NewFile(fdp, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to build shipment descriptors: %v", err))
	}
	registry := new(protoregistry.Files)
	if err := registry.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("failed to register shipment descriptors: %v", err))
	}
	return registry
}
