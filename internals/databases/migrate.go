package database

import (
	"log"

	cursoModel "painel_backend/internals/features/academic/cursos/model"
	poloModel "painel_backend/internals/features/academic/polos/model"
	professorModel "painel_backend/internals/features/academic/professores/model"
	trabalhoModel "painel_backend/internals/features/academic/trabalhos/model"
	categoriaModel "painel_backend/internals/features/home/categorias/model"
	ouvidoriaModel "painel_backend/internals/features/home/ouvidoria/model"
	postModel "painel_backend/internals/features/home/posts/model"
	settingModel "painel_backend/internals/features/home/settings/model"
	authModel "painel_backend/internals/features/users/auth/model"
	userModel "painel_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

// Models lists every table the panel owns, in dependency order.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&categoriaModel.CategoriaModel{},
		&cursoModel.CursoModel{},
		&poloModel.PoloModel{},
		&professorModel.ProfessorModel{},
		&trabalhoModel.TrabalhoModel{},
		&postModel.PostModel{},
		&ouvidoriaModel.OuvidoriaModel{},
		&settingModel.SettingModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Printf("[INFO] automigrate: %d tabelas", len(Models()))
	return nil
}
