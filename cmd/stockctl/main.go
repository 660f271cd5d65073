// stockctl opera el inventario directamente sobre el documento JSON local,
// sin levantar el servidor HTTP ni PostgreSQL.
//
// Uso: stockctl [-store ruta.json] <comando> [argumentos]
//
// Comandos:
//
//	list                          lista los ítems con su semáforo de stock
//	show <item-id>                detalle de un ítem y sus últimos movimientos
//	in <item-id> <cantidad>       registra una entrada
//	out <item-id> <cantidad>      registra una salida (se recorta a cero)
//	adjust <item-id> <cantidad>   fija la cantidad absoluta
//	alerts [green|yellow|red]     alertas de stock
//	predict [dias-lookback]       fechas estimadas de quiebre
//	report [archivo.csv]          reporte de niveles (stdout o archivo)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-monitor/internal/application/alerts"
	"github.com/tu-usuario/stock-monitor/internal/application/forecast"
	"github.com/tu-usuario/stock-monitor/internal/application/ledger"
	"github.com/tu-usuario/stock-monitor/internal/application/report"
	"github.com/tu-usuario/stock-monitor/internal/application/usecase"
	"github.com/tu-usuario/stock-monitor/internal/infrastructure/jsonstore"
	infrapdf "github.com/tu-usuario/stock-monitor/internal/infrastructure/pdf"
	"github.com/tu-usuario/stock-monitor/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	storePath := flag.String("store", cfg.Store.Path, "ruta del documento JSON de inventario")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	store := jsonstore.Open(*storePath)
	itemRepo := store.ItemRepo()
	movementRepo := store.MovementRepo()

	itemUC := usecase.NewItemUseCase(itemRepo)
	ledgerUC := ledger.NewUseCase(store, itemRepo, movementRepo)
	alertsUC := alerts.NewUseCase(itemRepo)
	forecastUC := forecast.NewUseCase(itemRepo, movementRepo)
	reportUC := report.NewUseCase(
		itemRepo, store.SupplierNames(), store.WarehouseNames(),
		infrapdf.NewMarotoReportGenerator(),
	)

	var cmdErr error
	switch args[0] {
	case "list":
		cmdErr = runList(itemUC)
	case "show":
		cmdErr = withItemArg(args, func(id string) error { return runShow(itemUC, ledgerUC, id) })
	case "in", "out", "adjust":
		cmdErr = runMovement(ledgerUC, args)
	case "alerts":
		status := ""
		if len(args) > 1 {
			status = args[1]
		}
		cmdErr = runAlerts(alertsUC, status)
	case "predict":
		lookback := forecast.DefaultLookbackDays
		if len(args) > 1 {
			lookback, cmdErr = strconv.Atoi(args[1])
			if cmdErr != nil || lookback <= 0 {
				cmdErr = fmt.Errorf("dias-lookback inválido: %q", args[1])
				break
			}
		}
		cmdErr = runPredict(forecastUC, lookback)
	case "report":
		out := ""
		if len(args) > 1 {
			out = args[1]
		}
		cmdErr = runReport(reportUC, out)
	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: stockctl [-store ruta.json] <list|show|in|out|adjust|alerts|predict|report> [args]")
}

func withItemArg(args []string, fn func(id string) error) error {
	if len(args) < 2 {
		return fmt.Errorf("falta el ID del ítem")
	}
	return fn(args[1])
}

func runList(itemUC *usecase.ItemUseCase) error {
	items, err := itemUC.List("", "", 0, 0)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tNOMBRE\tACTUAL\tMÍNIMO\tESTADO")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.SKU, item.Name,
			item.CurrentQuantity.String(), item.MinQuantity.String(), item.Status)
	}
	return w.Flush()
}

func runShow(itemUC *usecase.ItemUseCase, ledgerUC *ledger.UseCase, id string) error {
	item, err := itemUC.GetByID(id)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", item.Name, item.SKU)
	fmt.Printf("  cantidad actual: %s %s\n", item.CurrentQuantity.String(), item.Unit)
	fmt.Printf("  cantidad mínima: %s %s\n", item.MinQuantity.String(), item.Unit)
	fmt.Printf("  estado:          %s\n", item.Status)

	movements, err := ledgerUC.History(id, 10, 0)
	if err != nil {
		return err
	}
	if len(movements) == 0 {
		return nil
	}
	fmt.Println("  movimientos:")
	for _, m := range movements {
		fmt.Printf("    #%d  %-10s  %s  %s\n",
			m.ID, m.Type, m.Quantity.String(), m.Timestamp.Format("2006-01-02 15:04"))
	}
	return nil
}

func runMovement(ledgerUC *ledger.UseCase, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("uso: stockctl %s <item-id> <cantidad>", args[0])
	}
	quantity, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("cantidad inválida: %q", args[2])
	}
	movementType := args[0]
	if movementType == "adjust" {
		movementType = "adjustment"
	}
	movement, err := ledgerUC.Apply(context.Background(), ledger.ApplyInput{
		ItemID:   args[1],
		Type:     movementType,
		Quantity: quantity,
		Notes:    "registrado vía stockctl",
	})
	if err != nil {
		return err
	}
	fmt.Printf("movimiento #%d aplicado (%s %s)\n", movement.ID, movement.Type, movement.Quantity.String())
	return nil
}

func runAlerts(alertsUC *alerts.UseCase, status string) error {
	list, err := alertsUC.ListAlerts(alerts.Filter{Status: status})
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("sin alertas")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNOMBRE\tACTUAL\tMÍNIMO\tESTADO")
	for _, a := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.SKU, a.ItemName, a.CurrentQuantity.String(), a.MinQuantity.String(), a.Status)
	}
	return w.Flush()
}

func runPredict(forecastUC *forecast.UseCase, lookback int) error {
	predictions, err := forecastUC.PredictAll(lookback)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNOMBRE\tACTUAL\tCONSUMO/DÍA\tQUIEBRE ESTIMADO")
	for _, p := range predictions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.SKU, p.Name, p.CurrentQuantity.String(),
			p.AvgDailyUsage.String(), p.ShortageDate.Format("2006-01-02"))
	}
	return w.Flush()
}

func runReport(reportUC *report.UseCase, outPath string) error {
	out, err := reportUC.StockLevelsCSV()
	if err != nil {
		return err
	}
	if outPath == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("escribir reporte: %w", err)
	}
	fmt.Printf("reporte escrito en %s\n", outPath)
	return nil
}
