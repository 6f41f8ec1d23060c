// file: cmd/createadmin/main.go
// Tool offline untuk provisioning akun admin dashboard.
//
//	go run ./cmd/createadmin -email admin@tpq.id -password rahasia
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tpqnurislam_backend/internals/configs"
	"tpqnurislam_backend/internals/features/admin/users/model"
)

func main() {
	email := flag.String("email", "", "email admin")
	password := flag.String("password", "", "password admin (min 6 karakter)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("❌ -email dan -password wajib diisi")
	}
	if len(*password) < 6 {
		log.Fatal("❌ Password minimal 6 karakter")
	}

	configs.LoadEnv()
	db := configs.InitSeederDB()

	var existing model.AdminUser
	err := db.Where("email = ?", *email).First(&existing).Error
	switch {
	case err == nil:
		log.Fatalf("❌ Admin dengan email %s sudah ada", *email)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Fatalf("❌ Gagal cek admin: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	admin := model.AdminUser{
		UserID:       uuid.New(),
		Email:        *email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Gagal membuat admin: %v", err)
	}

	log.Printf("✅ Admin %s berhasil dibuat (user_id: %s)", admin.Email, admin.UserID)
}
