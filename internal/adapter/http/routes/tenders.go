package routes

import (
	"tender_finder/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTenders = "/tenders"
	PathStats   = "/stats"
	PathExports = "/exports"
)

func addTenderRoutes(rg *gin.RouterGroup, tenderHandler *handlers.TenderHandler) {
	tenders := rg.Group(PathTenders)
	{
		tenders.GET("", tenderHandler.ListTenders)
		tenders.GET("/:id", tenderHandler.GetTender)
	}

	rg.GET(PathStats, tenderHandler.GetStats)

	exports := rg.Group(PathExports)
	{
		exports.GET("/tenders.xlsx", tenderHandler.ExportTenders)
	}
}
