// Package storefront implements the interactive console menu: process an
// order, check inventory by product id, or exit.
package storefront

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/giftworks/storefront/internal/catalog"
	"github.com/giftworks/storefront/internal/fulfillment"
	"github.com/giftworks/storefront/internal/inventory"
	"github.com/giftworks/storefront/internal/order"
)

// Menu drives the console loop. It owns no storefront state; the engine
// and store are shared with the rest of the run.
type Menu struct {
	engine *fulfillment.Engine
	store  *inventory.Store
	in     *bufio.Scanner
	out    io.Writer

	nextOrder int
}

// NewMenu creates a menu reading commands from in and printing to out.
func NewMenu(engine *fulfillment.Engine, store *inventory.Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		engine:    engine,
		store:     store,
		in:        bufio.NewScanner(in),
		out:       out,
		nextOrder: 1,
	}
}

// Run loops until the user exits or input ends. Invalid input is reported
// and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "Welcome to the holiday storefront!")
	for {
		fmt.Fprintln(m.out, "enter:")
		fmt.Fprintln(m.out, "  1 to process an order")
		fmt.Fprintln(m.out, "  2 to check inventory")
		fmt.Fprintln(m.out, "  3 to exit")

		choice, ok := m.readLine("")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			m.processOrder(ctx)
		case "2":
			m.checkInventory()
		case "3":
			fmt.Fprintln(m.out, "thanks!")
			return nil
		default:
			fmt.Fprintln(m.out, "invalid input")
		}
	}
}

func (m *Menu) processOrder(ctx context.Context) {
	holiday, ok := m.readLine("holiday (halloween, christmas, easter): ")
	if !ok {
		return
	}
	rawItem, ok := m.readLine("category (toy, stuffed animal, candy): ")
	if !ok {
		return
	}
	category, err := catalog.ParseCategory(rawItem)
	if err != nil {
		fmt.Fprintln(m.out, "invalid input:", err)
		return
	}

	number, ok := m.readInt("order number: ")
	if !ok {
		return
	}
	name, ok := m.readLine("item name (blank for default): ")
	if !ok {
		return
	}
	productID, ok := m.readLine("product id (blank for default): ")
	if !ok {
		return
	}
	quantity, ok := m.readInt("quantity: ")
	if !ok {
		return
	}

	details := make(order.Details)
	for _, key := range detailKeys(catalog.ParseHoliday(holiday), category) {
		v, ok := m.readLine(key + " (blank to skip): ")
		if !ok {
			return
		}
		if v != "" {
			details[key] = v
		}
	}

	rec := order.Record{
		Number:    number,
		Holiday:   catalog.ParseHoliday(holiday),
		Category:  category,
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		Details:   details,
	}
	if rec.Number == 0 {
		rec.Number = m.nextOrder
	}
	m.nextOrder = rec.Number + 1

	outcome, err := m.engine.Process(ctx, rec)
	if err != nil {
		fmt.Fprintln(m.out, "order failed:", err)
		return
	}
	fmt.Fprintf(m.out, "order %d complete: %s\n", rec.Number, outcome)
}

func (m *Menu) checkInventory() {
	id, ok := m.readLine("product id: ")
	if !ok {
		return
	}
	level := m.store.LevelByID(id)
	fmt.Fprintf(m.out, "product %s: %s (%d on hand)\n", id, level, m.store.CountByID(id))
}

func (m *Menu) readLine(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(m.out, prompt)
	}
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) readInt(prompt string) (int, bool) {
	s, ok := m.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintln(m.out, "invalid input: not a number")
		return 0, false
	}
	return n, true
}

// detailKeys lists the detail fields worth prompting for, per holiday and
// category. Unknown holidays get no detail prompts; the engine reports the
// resolution error when the order is processed.
func detailKeys(h catalog.Holiday, c catalog.Category) []string {
	switch c {
	case catalog.CategoryToy:
		switch h {
		case catalog.Halloween:
			return []string{"has_batteries", "min_age", "speed", "jump_height", "has_glow", "spider_type"}
		case catalog.Christmas:
			return []string{"has_batteries", "min_age", "dimensions", "num_rooms"}
		case catalog.Easter:
			return []string{"has_batteries", "min_age", "num_sound", "colour"}
		}
	case catalog.CategoryStuffedAnimal:
		switch h {
		case catalog.Halloween, catalog.Christmas:
			return []string{"stuffing", "size", "fabric", "has_glow"}
		case catalog.Easter:
			return []string{"stuffing", "size", "fabric", "colour"}
		}
	case catalog.CategoryCandy:
		switch h {
		case catalog.Halloween:
			return []string{"has_nuts", "has_lactose", "variety"}
		case catalog.Christmas:
			return []string{"has_nuts", "has_lactose", "colour"}
		case catalog.Easter:
			return []string{"has_nuts", "has_lactose", "pack_size"}
		}
	}
	return nil
}
