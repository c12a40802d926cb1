package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/entities"
)

const nextPageTokenHeader = "X-Next-Page-Token"

//nolint:funlen
func RegisterLineageServiceRoutes(service contract.LineageService, parser contract.HTTPRequestParser, app fiber.Router) {
	app.Post("/datasets/", func(ctx *fiber.Ctx) error {
		input := &entities.CreateDataset{}
		if err := parser.ParseBody(ctx, input); err != nil {
			return err
		}
		output, err := service.CreateDataset(ctx.Context(), input)
		if err != nil {
			return err
		}
		return ctx.JSON(output)
	})
	app.Get("/datasets/", func(ctx *fiber.Ctx) error {
		input := &entities.ListDatasets{}
		if err := parser.ParseQuery(ctx, input); err != nil {
			return err
		}
		output, err := service.ListDatasets(ctx.Context(), input)
		if err != nil {
			return err
		}
		if output.NextPageToken != nil {
			ctx.Set(nextPageTokenHeader, *output.NextPageToken)
		}
		return ctx.JSON(output.Datasets)
	})
	app.Get("/datasets/:dataset_id", func(ctx *fiber.Ctx) error {
		input := &entities.GetDataset{}
		if err := parser.ParseParams(ctx, input); err != nil {
			return err
		}
		output, err := service.GetDataset(ctx.Context(), input)
		if err != nil {
			return err
		}
		return ctx.JSON(output)
	})
	app.Post("/models/:model_id/datasets/", func(ctx *fiber.Ctx) error {
		input := &entities.LinkDatasetToModel{}
		if err := parser.ParseParams(ctx, input); err != nil {
			return err
		}
		if err := parser.ParseBody(ctx, input); err != nil {
			return err
		}
		output, err := service.LinkDatasetToModel(ctx.Context(), input)
		if err != nil {
			return err
		}
		return ctx.JSON(output)
	})
	app.Get("/models/:model_id/datasets/", func(ctx *fiber.Ctx) error {
		input := &entities.GetModelDatasets{}
		if err := parser.ParseParams(ctx, input); err != nil {
			return err
		}
		output, err := service.GetModelDatasets(ctx.Context(), input)
		if err != nil {
			return err
		}
		return ctx.JSON(output)
	})
	app.Post("/models/:model_id/dependencies/", func(ctx *fiber.Ctx) error {
		input := &entities.CreateDependency{}
		if err := parser.ParseParams(ctx, input); err != nil {
			return err
		}
		if err := parser.ParseBody(ctx, input); err != nil {
			return err
		}
		output, err := service.CreateDependency(ctx.Context(), input)
		if err != nil {
			return err
		}
		return ctx.JSON(output)
	})
	app.Get("/models/:model_id/lineage", func(ctx *fiber.Ctx) error {
		input := &entities.GetLineage{}
		if err := parser.ParseParams(ctx, input); err != nil {
			return err
		}
		output, err := service.GetLineage(ctx.Context(), input)
		if err != nil {
			return err
		}
		return ctx.JSON(output)
	})
	app.Get("/models/:model_id/lineage/graph", func(ctx *fiber.Ctx) error {
		input := &entities.TraverseLineage{}
		if err := parser.ParseParams(ctx, input); err != nil {
			return err
		}
		if err := parser.ParseQuery(ctx, input); err != nil {
			return err
		}
		output, err := service.TraverseLineage(ctx.Context(), input)
		if err != nil {
			return err
		}
		return ctx.JSON(output)
	})
}
