package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// The catalog is fixed at process start; seed it if the DB is empty.
	if err := seedCatalog(db); err != nil {
		return nil, err
	}
	// Ensure demo accounts and owner data exist (idempotent).
	if err := seedUsers(db); err != nil {
		return nil, err
	}
	if err := seedOwnerData(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Medication catalog (read-only after seeding)
CREATE TABLE IF NOT EXISTS medications(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  name_ar TEXT NOT NULL,
  form TEXT NOT NULL,
  form_ar TEXT NOT NULL,
  dosage TEXT NOT NULL,
  laboratory TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  description TEXT NOT NULL,
  description_ar TEXT NOT NULL,
  composition TEXT NOT NULL,
  composition_ar TEXT NOT NULL,
  usage TEXT NOT NULL,
  usage_ar TEXT NOT NULL,
  side_effects TEXT NOT NULL,
  side_effects_ar TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  image TEXT
);
CREATE INDEX IF NOT EXISTS idx_medications_name ON medications(LOWER(name));

CREATE TABLE IF NOT EXISTS medication_alternatives(
  medication_id INTEGER NOT NULL REFERENCES medications(id) ON DELETE CASCADE,
  alt_id INTEGER NOT NULL,
  pos INTEGER NOT NULL,
  PRIMARY KEY(medication_id, alt_id)
);

CREATE TABLE IF NOT EXISTS medication_pharmacies(
  medication_id INTEGER NOT NULL REFERENCES medications(id) ON DELETE CASCADE,
  pharmacy_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  distance TEXT NOT NULL,
  stock INTEGER NOT NULL CHECK (stock >= 0),
  pos INTEGER NOT NULL,
  PRIMARY KEY(medication_id, pharmacy_id)
);

-- Pharmacies shown on the map
CREATE TABLE IF NOT EXISTS pharmacies(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  address TEXT NOT NULL,
  phone TEXT NOT NULL,
  latitude REAL NOT NULL,
  longitude REAL NOT NULL,
  is_open INTEGER NOT NULL DEFAULT 0,
  hours TEXT NOT NULL,
  distance_km REAL NOT NULL DEFAULT 0,
  services TEXT NOT NULL DEFAULT '',
  payment TEXT NOT NULL DEFAULT '',
  parking INTEGER NOT NULL DEFAULT 0,
  wheelchair INTEGER NOT NULL DEFAULT 0,
  image TEXT,
  description TEXT
);

-- Users & sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('user','pharmacy_owner')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- One serialized identity blob per session id; NULL means logged out.
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  identity_json TEXT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen TEXT
);

-- Pharmacy owner's editable inventory
CREATE TABLE IF NOT EXISTS stock_items(
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  stock INTEGER NOT NULL CHECK (stock >= 0),
  description TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  last_updated TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_stock_items_owner ON stock_items(owner_id);

-- Opening hours: seven ordered day rows per owner plus override flags
CREATE TABLE IF NOT EXISTS opening_days(
  owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  pos INTEGER NOT NULL CHECK (pos BETWEEN 0 AND 6),
  day TEXT NOT NULL,
  day_fr TEXT NOT NULL,
  is_open INTEGER NOT NULL DEFAULT 0,
  morning_open TEXT NOT NULL DEFAULT '',
  morning_close TEXT NOT NULL DEFAULT '',
  afternoon_open TEXT NOT NULL DEFAULT '',
  afternoon_close TEXT NOT NULL DEFAULT '',
  PRIMARY KEY(owner_id, pos)
);

CREATE TABLE IF NOT EXISTS hours_flags(
  owner_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  on_duty INTEGER NOT NULL DEFAULT 0,
  night_pharmacy INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS contact_messages(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  subject TEXT NOT NULL,
  message TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func seedCatalog(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM medications`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting medication and pharmacy catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO medications(id,name,name_ar,form,form_ar,dosage,laboratory,price,
	  description,description_ar,composition,composition_ar,usage,usage_ar,side_effects,side_effects_ar,stock,image) VALUES
	  (1,'DOLIPRANE','دوليبران','Comprimé','أقراص','1000 mg','SANOFI',3.500,
	   'Traitement symptomatique des douleurs d''intensité légère à modérée et/ou des états fébriles',
	   'علاج أعراض الآلام الخفيفة إلى المتوسطة و/أو حالات الحمى',
	   'Paracétamol','باراسيتامول',
	   'Voie orale. 1 comprimé toutes les 6 heures si besoin','عن طريق الفم. قرص واحد كل 6 ساعات عند الحاجة',
	   'Réactions allergiques, troubles hépatiques','ردود فعل تحسسية، اضطرابات الكبد',
	   150,'/media/medications/doliprane.jpg'),
	  (2,'EFFERALGAN','إيفرالغان','Comprimé effervescent','أقراص فوارة','1000 mg','UPSA',4.200,
	   'Traitement symptomatique des douleurs et/ou fièvre','علاج أعراض الألم و/أو الحمى',
	   'Paracétamol','باراسيتامول',
	   'Voie orale. 1 comprimé dissous dans un verre d''eau toutes les 6 heures si besoin',
	   'عن طريق الفم. قرص واحد يذوب في كأس ماء كل 6 ساعات عند الحاجة',
	   'Réactions allergiques, troubles digestifs','ردود فعل تحسسية، اضطرابات هضمية',
	   85,'/media/medications/efferalgan.jpg'),
	  (3,'DAFALGAN','دافالغان','Gélule','كبسولات','1000 mg','BRISTOL MYERS SQUIBB',3.800,
	   'Traitement de la douleur et/ou fièvre','علاج الألم و/أو الحمى',
	   'Paracétamol','باراسيتامول',
	   'Voie orale. 1 gélule toutes les 6 heures si besoin','عن طريق الفم. كبسولة واحدة كل 6 ساعات عند الحاجة',
	   'Réactions allergiques, troubles hépatiques','ردود فعل تحسسية، اضطرابات الكبد',
	   200,'/media/medications/dafalgan.jpg'),
	  (4,'AUGMENTIN','أوجمنتين','Comprimé','أقراص','1g/125mg','GSK',12.500,
	   'Antibiotique de la famille des bêta-lactamines','مضاد حيوي من عائلة البيتا لاكتام',
	   'Amoxicilline + Acide clavulanique','أموكسيسيلين + حمض كلافولانيك',
	   'Voie orale. 1 comprimé toutes les 12 heures','عن طريق الفم. قرص واحد كل 12 ساعة',
	   'Diarrhée, nausées, réactions allergiques','إسهال، غثيان، ردود فعل تحسسية',
	   30,'/media/medications/augmentin.jpg'),
	  (5,'CLAMOXYL','كلاموكسيل','Gélule','كبسولات','500 mg','GSK',8.900,
	   'Antibiotique de la famille des bêta-lactamines','مضاد حيوي من عائلة البيتا لاكتام',
	   'Amoxicilline','أموكسيسيلين',
	   'Voie orale. 1 gélule toutes les 8 heures','عن طريق الفم. كبسولة واحدة كل 8 ساعات',
	   'Diarrhée, nausées, réactions allergiques','إسهال، غثيان، ردود فعل تحسسية',
	   0,'/media/medications/clamoxyl.jpg')`)

	tx.MustExec(`INSERT INTO medication_alternatives(medication_id,alt_id,pos) VALUES
	  (1,2,0),(1,3,1),
	  (2,1,0),(2,3,1),
	  (3,1,0),(3,2,1),
	  (4,5,0),
	  (5,4,0)`)

	tx.MustExec(`INSERT INTO medication_pharmacies(medication_id,pharmacy_id,name,distance,stock,pos) VALUES
	  (1,1,'Pharmacie Centrale','0.5 km',150,0),
	  (1,2,'Pharmacie La Marsa','1.2 km',75,1),
	  (2,1,'Pharmacie Centrale','0.5 km',85,0),
	  (3,3,'Pharmacie du Lac','0.8 km',200,0),
	  (4,1,'Pharmacie Centrale','0.5 km',30,0)`)

	tx.MustExec(`INSERT INTO pharmacies(id,name,address,phone,latitude,longitude,is_open,hours,distance_km,
	  services,payment,parking,wheelchair,image,description) VALUES
	  (1,'Pharmacie Centrale Tunis','15 Avenue Habib Bourguiba, Tunis','71 123 456',36.7992,10.1802,1,
	   '8h00 - 23h00',0.5,'Garde,Tests rapides,Vaccination','Espèces,Carte bancaire,CNAM',1,1,
	   '/media/pharmacies/centrale.jpg',
	   'Pharmacie moderne située au cœur de Tunis, offrant une large gamme de services et de produits pharmaceutiques.'),
	  (2,'Pharmacie La Marsa','45 Avenue de la Plage, La Marsa','71 234 567',36.8892,10.3225,0,
	   '9h00 - 19h00',1.2,'Tests rapides,Conseil nutritionnel','Espèces,Carte bancaire',0,1,
	   '/media/pharmacies/marsa.jpg',
	   'Pharmacie de quartier avec une équipe expérimentée, spécialisée dans le conseil personnalisé.'),
	  (3,'Pharmacie de Nuit Lac','78 Les Berges du Lac, Tunis','71 345 678',36.8317,10.2292,1,
	   '24h/24',0.8,'Garde,Tests rapides,Urgences','Espèces,Carte bancaire,CNAM',1,1,
	   '/media/pharmacies/lac.jpg',
	   'Pharmacie de garde 24h/24 équipée pour les urgences, située dans la zone du Lac.')`)

	return tx.Commit()
}

// seedUsers ensures the two demo accounts exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-john", "user@example.com", "John Doe", "user", "Passw0rd!"),
		mk("u-centrale", "pharmacy@example.com", "Pharmacie Centrale", "pharmacy_owner", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// seedOwnerData gives the demo owner a starting stock list and schedule.
func seedOwnerData(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM stock_items WHERE owner_id='u-centrale'`); err != nil {
		return err
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	if n == 0 {
		tx.MustExec(`INSERT INTO stock_items(id,owner_id,name,price,stock,description,image,category,last_updated) VALUES
		  ('1','u-centrale','DOLIPRANE',3.5,150,'Comprimé 1000mg - Traitement de la douleur et de la fièvre',
		   '/media/medications/doliprane.jpg','Analgésiques','2024-03-15'),
		  ('2','u-centrale','EFFERALGAN',4.2,85,'Comprimé effervescent 500mg - Paracétamol',
		   '/media/medications/efferalgan.jpg','Analgésiques','2024-03-14')`)
	}

	var d int
	if err := tx.Get(&d, `SELECT COUNT(*) FROM opening_days WHERE owner_id='u-centrale'`); err != nil {
		return err
	}
	if d == 0 {
		tx.MustExec(`INSERT INTO opening_days(owner_id,pos,day,day_fr,is_open,morning_open,morning_close,afternoon_open,afternoon_close) VALUES
		  ('u-centrale',0,'monday','Lundi',1,'08:00','12:00','14:00','19:00'),
		  ('u-centrale',1,'tuesday','Mardi',1,'08:00','12:00','14:00','19:00'),
		  ('u-centrale',2,'wednesday','Mercredi',1,'08:00','12:00','14:00','19:00'),
		  ('u-centrale',3,'thursday','Jeudi',1,'08:00','12:00','14:00','19:00'),
		  ('u-centrale',4,'friday','Vendredi',1,'08:00','12:00','14:00','19:00'),
		  ('u-centrale',5,'saturday','Samedi',1,'08:00','12:00','',''),
		  ('u-centrale',6,'sunday','Dimanche',0,'','','','')`)
		tx.MustExec(`INSERT INTO hours_flags(owner_id,on_duty,night_pharmacy) VALUES ('u-centrale',0,0)
		  ON CONFLICT(owner_id) DO NOTHING`)
	}

	return tx.Commit()
}
