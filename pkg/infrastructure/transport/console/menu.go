package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kevinalex1994/Inventario-Marcimex/pkg/domain/model"
	"github.com/kevinalex1994/Inventario-Marcimex/pkg/domain/service"
)

// errEOF signals that the input stream ended; the menu exits cleanly.
var errEOF = errors.New("end of input")

// Menu drives the interactive console loop. It parses raw operator input
// into typed values, dispatches to the inventory service and renders results
// or errors; it holds no business logic of its own.
type Menu struct {
	inventory service.InventoryService
	logger    *log.Logger
	in        *bufio.Scanner
	out       io.Writer
}

func NewMenu(inventory service.InventoryService, logger *log.Logger, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		inventory: inventory,
		logger:    logger,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printOptions()
		choice, err := m.readLine("Selecciona una opción: ")
		if err != nil {
			return nil
		}

		var opErr error
		switch choice {
		case "1":
			opErr = m.addProduct(ctx)
		case "2":
			opErr = m.removeProduct(ctx)
		case "3":
			opErr = m.updateQuantity(ctx)
		case "4":
			opErr = m.updatePrice(ctx)
		case "5":
			opErr = m.searchByName()
		case "6":
			m.listAll()
		case "0":
			fmt.Fprintln(m.out, "¡Hasta pronto!")
			return nil
		default:
			fmt.Fprintln(m.out, "Opción no válida.")
		}

		if errors.Is(opErr, errEOF) {
			return nil
		}
		if opErr != nil {
			m.renderError(opErr)
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out, "===== Menú Inventario — Almacenes Marcimex =====")
	fmt.Fprintln(m.out, "1. Añadir producto")
	fmt.Fprintln(m.out, "2. Eliminar producto por ID")
	fmt.Fprintln(m.out, "3. Actualizar cantidad")
	fmt.Fprintln(m.out, "4. Actualizar precio")
	fmt.Fprintln(m.out, "5. Buscar por nombre")
	fmt.Fprintln(m.out, "6. Mostrar todos los productos")
	fmt.Fprintln(m.out, "0. Salir")
}

func (m *Menu) addProduct(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n>> Añadir producto")
	id, err := m.readInt64("ID (entero positivo): ")
	if err != nil {
		return err
	}
	name, err := m.readLine("Nombre: ")
	if err != nil {
		return err
	}
	quantity, err := m.readInt("Cantidad (>=0): ")
	if err != nil {
		return err
	}
	price, err := m.readFloat("Precio (>=0): ")
	if err != nil {
		return err
	}

	p, err := model.NewProduct(id, name, quantity, price)
	if err != nil {
		return err
	}
	if err := m.inventory.Add(ctx, p); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Producto añadido.")
	return nil
}

func (m *Menu) removeProduct(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n>> Eliminar producto")
	id, err := m.readInt64("ID a eliminar: ")
	if err != nil {
		return err
	}
	if err := m.inventory.Remove(ctx, id); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Producto eliminado.")
	return nil
}

func (m *Menu) updateQuantity(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n>> Actualizar cantidad")
	id, err := m.readInt64("ID: ")
	if err != nil {
		return err
	}
	quantity, err := m.readInt("Nueva cantidad (>=0): ")
	if err != nil {
		return err
	}
	if err := m.inventory.UpdateQuantity(ctx, id, quantity); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Cantidad actualizada.")
	return nil
}

func (m *Menu) updatePrice(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n>> Actualizar precio")
	id, err := m.readInt64("ID: ")
	if err != nil {
		return err
	}
	price, err := m.readFloat("Nuevo precio (>=0): ")
	if err != nil {
		return err
	}
	if err := m.inventory.UpdatePrice(ctx, id, price); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Precio actualizado.")
	return nil
}

func (m *Menu) searchByName() error {
	fmt.Fprintln(m.out, "\n>> Buscar por nombre")
	text, err := m.readLine("Texto a buscar: ")
	if err != nil {
		return err
	}

	results := m.inventory.SearchByName(text)
	if len(results) == 0 {
		fmt.Fprintln(m.out, "Sin coincidencias.")
		return nil
	}

	fmt.Fprintf(m.out, "\nResultados (%d):\n", len(results))
	for _, s := range results {
		fmt.Fprintln(m.out, service.FormatProduct(s))
	}
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) listAll() {
	products := m.inventory.ListAll()
	if len(products) == 0 {
		fmt.Fprintln(m.out, "Inventario vacío.")
		return
	}

	fmt.Fprintln(m.out, "\n== Inventario ==")
	for _, s := range products {
		fmt.Fprintln(m.out, service.FormatProduct(s))
	}
	fmt.Fprintln(m.out)
}

func (m *Menu) renderError(err error) {
	if errors.Is(err, model.ErrIntegrity) {
		// The in-memory pre-checks should have caught this; someone touched
		// the store behind our back.
		m.logger.WithError(err).Warn("unexpected store integrity violation")
	}
	fmt.Fprintf(m.out, "Error: %v\n\n", err)
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", errEOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) readInt64(prompt string) (int64, error) {
	for {
		raw, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(m.out, "Ingresa un número entero válido.")
	}
}

func (m *Menu) readInt(prompt string) (int, error) {
	v, err := m.readInt64(prompt)
	return int(v), err
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	for {
		raw, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(m.out, "Ingresa un número (usa punto decimal).")
	}
}
