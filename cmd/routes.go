package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	// No forced JSON content type on routes that serve files or HTML.
	rawMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	mux := pat.New()

	// Items. The group route must be registered before /items/:id so pat
	// does not capture "group" as an id.
	mux.Del("/items/group", standardMiddleware.ThenFunc(app.itemHandler.DeleteItemsGroup))
	mux.Post("/items/", standardMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/items/", standardMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Put("/items/:id", standardMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/items/:id", standardMiddleware.ThenFunc(app.itemHandler.DeleteItem))

	// Excel bulk editing
	mux.Get("/download-excel-template", rawMiddleware.ThenFunc(app.excelHandler.DownloadTemplate))
	mux.Get("/download-excel-data", rawMiddleware.ThenFunc(app.excelHandler.DownloadData))
	mux.Post("/upload-excel", standardMiddleware.ThenFunc(app.excelHandler.UploadExcel))

	// Presentation and noise endpoints
	mux.Get("/health", standardMiddleware.ThenFunc(app.systemHandler.Health))
	mux.Get("/favicon.ico", rawMiddleware.ThenFunc(app.systemHandler.Favicon))
	mux.Get("/robots.txt", rawMiddleware.ThenFunc(app.systemHandler.Robots))
	mux.Get("/", rawMiddleware.ThenFunc(app.systemHandler.Home))

	return mux
}
