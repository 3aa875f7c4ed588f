// Command demo siembra las colecciones en memoria de la planta y recorre una
// sesión guionada: consultas de inventario, edición masiva de stock, creación
// y avance de un lote, una inspección de calidad con su reporte PDF y una
// sesión de edición de datos maestros. Todo el estado se pierde al terminar.
package main

import (
	"errors"
	"os"
	"path/filepath"

	appinventory "github.com/jhoicas/Planta-core/internal/application/inventory"
	appmasterdata "github.com/jhoicas/Planta-core/internal/application/masterdata"
	appproduction "github.com/jhoicas/Planta-core/internal/application/production"
	appquality "github.com/jhoicas/Planta-core/internal/application/quality"
	"github.com/jhoicas/Planta-core/internal/domain/entity"
	dominv "github.com/jhoicas/Planta-core/internal/domain/inventory"
	domquality "github.com/jhoicas/Planta-core/internal/domain/quality"
	"github.com/jhoicas/Planta-core/internal/infrastructure/memory"
	"github.com/jhoicas/Planta-core/internal/infrastructure/pdf"
	"github.com/jhoicas/Planta-core/pkg/config"
	"github.com/jhoicas/Planta-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("plant", cfg.App.PlantName).
		Msg("iniciando aplicación")

	inventoryRepo := memory.NewInventoryRepository(memory.SeedInventory())
	orderRepo := memory.NewPurchaseOrderRepository(memory.SeedPurchaseOrders())
	batchRepo := memory.NewBatchRepository(memory.SeedBatches())
	inspectionRepo := memory.NewInspectionRepository(memory.SeedInspections())
	productRepo := memory.NewProductRepository(memory.SeedProducts())

	thresholds := dominv.Thresholds{
		Critical: cfg.Inventory.CriticalRatio,
		Low:      cfg.Inventory.LowRatio,
	}
	scoring := domquality.Scoring{
		PassMin:        cfg.Quality.PassScore,
		ConditionalMin: cfg.Quality.ConditionalScore,
	}

	reportGen := pdf.NewInspectionReportGenerator()
	inventoryUC := appinventory.NewUseCase(inventoryRepo, thresholds)
	productionUC := appproduction.NewUseCase(batchRepo, orderRepo, productRepo)
	qualityUC := appquality.NewUseCase(inspectionRepo, batchRepo, productRepo, scoring, reportGen, cfg.App.PlantName)
	masterUC := appmasterdata.NewUseCase(productRepo, inventoryRepo)

	// ── Inventario ────────────────────────────────────────────────────────────

	summary, err := inventoryUC.Summary()
	if err != nil {
		log.Fatal().Err(err).Msg("resumen de inventario")
	}
	log.Info().
		Int("items", summary.ItemCount).
		Int("alertas", summary.AlertCount).
		Str("valuacion", summary.TotalValuation.StringFixed(2)).
		Msg("inventario sembrado")

	critical, _ := inventoryUC.Search("", entity.StatusCritical)
	for _, it := range critical {
		log.Warn().Str("sku", it.SKU).Float64("stock", it.Stock).Msg("stock crítico")
	}

	// Edición masiva: reponer los dos ítems críticos en una sola operación.
	edits := make([]appinventory.StockEdit, 0, len(critical))
	for _, it := range critical {
		edits = append(edits, appinventory.StockEdit{ID: it.ID, NewStock: it.MaxStock * 0.5})
	}
	if err := inventoryUC.BulkUpdateStock(edits); err != nil {
		var bulkErr *appinventory.BulkValidationError
		if errors.As(err, &bulkErr) {
			for _, r := range bulkErr.Rows {
				log.Error().Str("sku", r.SKU).AnErr("motivo", r.Reason).Msg("fila rechazada")
			}
		}
		log.Fatal().Err(err).Msg("edición masiva")
	}
	log.Info().Int("filas", len(edits)).Msg("stock repuesto")

	// ── Producción ────────────────────────────────────────────────────────────

	batch, err := productionUC.CreateBatch("PO-2024-001", 500)
	if err != nil {
		log.Fatal().Err(err).Msg("crear lote")
	}
	log.Info().Str("batch", batch.ID).Int("qty", batch.Quantity).Msg("lote planificado")

	// Avanzar la primera etapa hasta completarla: pending -> active -> completed.
	first := batch.Stages[0].ID
	if batch, err = productionUC.AdvanceStage(batch.ID, first); err != nil {
		log.Fatal().Err(err).Msg("activar etapa")
	}
	if batch, err = productionUC.AdvanceStage(batch.ID, first); err != nil {
		log.Fatal().Err(err).Msg("completar etapa")
	}
	log.Info().
		Str("batch", batch.ID).
		Str("status", string(batch.Status)).
		Int("progreso", productionUC.Progress(batch)).
		Msg("primera etapa completada, sucesora activa")

	// ── Calidad ───────────────────────────────────────────────────────────────

	draft, err := qualityUC.StartInspection("BATCH-1001", "Sarah J.")
	if err != nil {
		log.Fatal().Err(err).Msg("abrir inspección")
	}
	for i, item := range draft.Items {
		status := entity.ItemPass
		if i == len(draft.Items)-1 {
			status = entity.ItemNA
		}
		if err := qualityUC.SetItemStatus(draft, item.ID, status); err != nil {
			log.Fatal().Err(err).Msg("marcar criterio")
		}
	}
	submitted, err := qualityUC.Submit(draft)
	if err != nil {
		log.Fatal().Err(err).Msg("enviar inspección")
	}
	log.Info().
		Str("inspeccion", submitted.ID).
		Int("score", submitted.Score).
		Str("resultado", string(submitted.Status)).
		Msg("inspección registrada")

	report, err := qualityUC.Report(submitted.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("generar reporte")
	}
	outPath := filepath.Join(cfg.Report.OutputDir, submitted.ID+".pdf")
	if err := os.WriteFile(outPath, report, 0o644); err != nil {
		log.Fatal().Err(err).Msg("escribir reporte")
	}
	log.Info().Str("path", outPath).Int("bytes", len(report)).Msg("reporte PDF generado")

	// ── Datos maestros ────────────────────────────────────────────────────────

	session, err := masterUC.BeginEdit("prod-1")
	if err != nil {
		log.Fatal().Err(err).Msg("abrir sesión de edición")
	}
	imported, err := masterUC.ImportChecklist(session, "prod-2")
	if err != nil {
		log.Fatal().Err(err).Msg("importar checklist")
	}
	cats, _ := masterUC.Categories(session, "")
	log.Info().
		Int("importados", imported).
		Strs("categorias", cats).
		Msg("checklist importado en la sesión")
	if err := masterUC.Save(session); err != nil {
		log.Fatal().Err(err).Msg("confirmar ficha")
	}
	log.Info().Str("producto", session.ID).Msg("ficha maestra confirmada")
	log.Info().Msg("sesión de demostración finalizada")
}
