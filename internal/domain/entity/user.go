package entity

import (
	"time"

	"github.com/elesfuerzo/pos-api/internal/domain/enum"
)

// UserProfile is the role profile stored alongside a Firebase Auth account.
// The document ID is the Firebase UID; credentials never live here.
type UserProfile struct {
	UID       string        `firestore:"-" json:"uid"`
	Email     string        `firestore:"correo" json:"email"`
	Role      enum.UserRole `firestore:"rol" json:"role"`
	Verified  bool          `firestore:"verificado" json:"verified"`
	CreatedAt time.Time     `firestore:"creado,serverTimestamp" json:"created_at"`
}
