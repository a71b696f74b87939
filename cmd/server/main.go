package main

import (
	"os"

	"docurag/backend/internal/app"
)

//	@title			DocuRAG Session Gateway API
//	@version		1.0
//	@description	Session orchestration for document-grounded conversations over a RAG backend.

//	@BasePath	/api

func main() {
	os.Exit(app.Run())
}
