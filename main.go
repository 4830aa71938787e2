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

package main

import (
	"fmt"
	"log"

	"github.com/google/tabulate/core/models"
	"github.com/google/tabulate/core/server"
	"github.com/google/tabulate/core/tally"
	"github.com/google/tabulate/demo"
)

func main() {
	fmt.Println("Starting Tabulate...")

	dataModel := models.NewDataModel()

	dataModel.AddTable(&models.TableInfo{
		Name:                "orders",
		Description:         "Sample orders with region, status, category, revenue, and quantity. Some revenue cells are missing.",
		Table:               demo.CreateOrdersTable(),
		DefaultGroupColumns: []string{"region"},
	})
	dataModel.AddTable(&models.TableInfo{
		Name:                "inventory",
		Description:         "Stock levels per warehouse and product, with unit cost where known.",
		Table:               demo.CreateInventoryTable(),
		DefaultGroupColumns: []string{"warehouse"},
	})
	dataModel.AddTable(&models.TableInfo{
		Name:                "shipments",
		Description:         "A shipment manifest loaded from textproto and denormalized to one row per shipment.",
		Table:               demo.CreateShipmentsTable(),
		DefaultGroupColumns: []string{"carrier"},
	})

	printDemoSummary(dataModel)

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	srv, err := server.NewServer(dataModel)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Fatal(srv.ListenAndServe(cfg))
}

// printDemoSummary prints a revenue-weighted proportion summary of the
// orders table to stdout so the pipeline can be seen working without a
// browser.
func printDemoSummary(dataModel *models.DataModel) {
	orders := dataModel.GetTable("orders")
	summary, err := tally.Prop(orders, []string{"region"}, tally.Options{
		Weight:   "revenue",
		SortDesc: true,
	})
	if err != nil {
		log.Fatalf("Failed to summarize orders: %v", err)
	}

	fmt.Println("\nRevenue share by region:")
	fmt.Println(summary.ToAscii())
}
