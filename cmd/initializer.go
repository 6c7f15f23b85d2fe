package main

import (
	"database/sql"
	"log"

	"itemsBack/internal/handlers"
	"itemsBack/internal/repositories"
	"itemsBack/internal/services"
)

type application struct {
	errorLog      *log.Logger
	infoLog       *log.Logger
	itemHandler   *handlers.ItemHandler
	itemRepo      *repositories.ItemRepository
	excelHandler  *handlers.ExcelHandler
	systemHandler *handlers.SystemHandler
	db            *sql.DB
}

func initializeApp(db *sql.DB, errorLog, infoLog *log.Logger) *application {
	itemRepo := &repositories.ItemRepository{DB: db}
	itemService := &services.ItemService{ItemRepo: itemRepo}
	excelService := &services.ExcelService{ItemRepo: itemRepo, InfoLog: infoLog, ErrorLog: errorLog}

	return &application{
		errorLog:      errorLog,
		infoLog:       infoLog,
		itemRepo:      itemRepo,
		itemHandler:   &handlers.ItemHandler{Service: itemService},
		excelHandler:  &handlers.ExcelHandler{Service: excelService},
		systemHandler: &handlers.SystemHandler{ItemService: itemService},
		db:            db,
	}
}
