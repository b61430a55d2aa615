package categorias

import (
	"context"
	"log"

	"painel_backend/internals/features/home/categorias/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoriaSeed struct {
	Nome  string
	Icone string
	Cor   string
}

var Defaults = []CategoriaSeed{
	{Nome: "Graduação", Icone: "graduation-cap", Cor: "#1e40af"},
	{Nome: "Pós-graduação", Icone: "award", Cor: "#7c3aed"},
	{Nome: "Extensão", Icone: "book-open", Cor: "#059669"},
	{Nome: "Notícias", Icone: "newspaper", Cor: "#d97706"},
	{Nome: "Eventos", Icone: "calendar", Cor: "#dc2626"},
}

// SeedCategorias inserts the defaults, skipping names that already exist.
func SeedCategorias(ctx context.Context, db *gorm.DB, seeds []CategoriaSeed) (int64, error) {
	rows := make([]model.CategoriaModel, 0, len(seeds))
	for _, s := range seeds {
		icone, cor := s.Icone, s.Cor
		rows = append(rows, model.CategoriaModel{CategoriaNome: s.Nome, CategoriaIcone: &icone, CategoriaCor: &cor})
	}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "categoria_nome"}}, DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	log.Printf("[INFO] seed: %d categorias novas", res.RowsAffected)
	return res.RowsAffected, nil
}
